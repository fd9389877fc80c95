// Copyright (c) Jeeplatform
// SPDX-License-Identifier: MPL-2.0

package redirect

import (
	"errors"
	"fmt"
	"net/http"
)

// RedirectStrategy answers an unauthenticated request with an HTTP redirect
// to the identity provider's login URL. This is the standard policy for
// browser clients, which follow the redirect to the login page.
type RedirectStrategy struct {
	statusCode int
}

// NewRedirectStrategy creates a RedirectStrategy. Supports WithStatusCode
// for choosing a redirect status other than 302 Found; codes outside the
// 3xx range are rejected.
func NewRedirectStrategy(opt ...Option) (*RedirectStrategy, error) {
	const op = "redirect.NewRedirectStrategy"
	opts := getStrategyOpts(opt...)

	code := opts.withStatusCode
	if code == 0 {
		code = http.StatusFound
	}
	if code < 300 || code > 399 {
		return nil, fmt.Errorf("%s: status code %d is not a redirect code: %w", op, code, ErrInvalidParameter)
	}

	return &RedirectStrategy{
		statusCode: code,
	}, nil
}

// Redirect finalizes the response as a redirect to targetURL. The URL is
// copied into the Location header verbatim (never parsed, re-encoded or
// otherwise transformed) and no body is written, so non-browser callers
// receive zero bytes rather than the courtesy HTML http.Redirect emits.
//
// Invoking Redirect on a response that is already committed returns
// ErrResponseCommitted and leaves the response untouched; commitment is
// detectable when w (or a wrapper in its chain) satisfies
// interface{ Committed() bool }, which NewResponseWriter provides. A write
// failure on the underlying connection is returned wrapped in ErrTransport.
func (s *RedirectStrategy) Redirect(w http.ResponseWriter, r *http.Request, targetURL string) error {
	const op = "redirect.RedirectStrategy.Redirect"
	switch {
	case w == nil:
		return fmt.Errorf("%s: missing response writer: %w", op, ErrNilParameter)
	case targetURL == "":
		return fmt.Errorf("%s: missing target url: %w", op, ErrInvalidParameter)
	}
	if c, ok := w.(committedChecker); ok && c.Committed() {
		return fmt.Errorf("%s: %w", op, ErrResponseCommitted)
	}

	w.Header().Set("Location", targetURL)
	w.WriteHeader(s.statusCode)

	return flush(op, w)
}

// flush pushes the status line and headers to the wire so a connection the
// peer already closed surfaces as an error to the caller rather than being
// discovered by nobody.
func flush(op string, w http.ResponseWriter) error {
	err := http.NewResponseController(w).Flush()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, http.ErrNotSupported):
		// the server (or a test recorder) buffers whole responses; delivery
		// failures will surface there instead
		return nil
	default:
		return fmt.Errorf("%s: %w: %v", op, ErrTransport, err)
	}
}
