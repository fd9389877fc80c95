// Copyright (c) Jeeplatform
// SPDX-License-Identifier: MPL-2.0

package redirect

import (
	"net/http"
)

// ResponseWriter wraps an http.ResponseWriter and records whether the
// response has been committed (status line and headers handed to the
// server). net/http offers no portable way to ask a ResponseWriter this, so
// frameworks should wrap the response before invoking a Strategy; that turns
// a double commit into an error instead of a superfluous write on the wire.
//
// ResponseWriter is request-scoped and not safe for concurrent use, matching
// the http.ResponseWriter it wraps.
type ResponseWriter struct {
	http.ResponseWriter
	committed bool
}

// NewResponseWriter wraps w with commit tracking.
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w}
}

// Committed reports whether WriteHeader or Write has run on the response.
func (w *ResponseWriter) Committed() bool {
	return w.committed
}

func (w *ResponseWriter) WriteHeader(statusCode int) {
	w.committed = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ResponseWriter) Write(p []byte) (int, error) {
	w.committed = true
	return w.ResponseWriter.Write(p)
}

// Unwrap exposes the underlying writer so http.ResponseController can reach
// the server's flush and deadline support through the wrapper.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
