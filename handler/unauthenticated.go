// Copyright (c) Jeeplatform
// SPDX-License-Identifier: MPL-2.0

// handler provides the http middleware that connects an authentication
// decision to a redirect.Strategy: requests with an authenticated principal
// pass through untouched, unauthenticated ones are answered by the strategy
// with the identity provider login URL, exactly once and before any body
// write.
package handler

import (
	"fmt"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-uuid"

	"github.com/jeeplatform/ssoredirect/redirect"
)

// AuthnFunc reports whether the request carries an authenticated principal.
// It is consulted once per request and must not write to the response.
type AuthnFunc func(r *http.Request) bool

// LoginURLFunc computes the identity provider login URL for an
// unauthenticated request, typically the IDP login endpoint with a service
// parameter naming the originally requested resource. The returned URL is
// handed to the strategy verbatim.
type LoginURLFunc func(r *http.Request) (string, error)

// Unauthenticated returns middleware guarding a handler with the given
// strategy. The response is wrapped with redirect.NewResponseWriter before
// the strategy sees it, so a strategy invocation racing other response
// writes fails loudly instead of double-writing.
//
// Strategy errors are logged (see WithLogger) and not exposed to the client;
// by the time the strategy can fail the connection is usually gone anyway.
func Unauthenticated(authn AuthnFunc, loginURL LoginURLFunc, s redirect.Strategy, opt ...Option) (func(http.Handler) http.Handler, error) {
	const op = "handler.Unauthenticated"

	var invalid *multierror.Error
	if authn == nil {
		invalid = multierror.Append(invalid, fmt.Errorf("%s: missing authn func: %w", op, redirect.ErrNilParameter))
	}
	if loginURL == nil {
		invalid = multierror.Append(invalid, fmt.Errorf("%s: missing login url func: %w", op, redirect.ErrNilParameter))
	}
	if s == nil {
		invalid = multierror.Append(invalid, fmt.Errorf("%s: missing strategy: %w", op, redirect.ErrNilParameter))
	}
	if err := invalid.ErrorOrNil(); err != nil {
		return nil, err
	}

	opts := getOpts(opt...)
	logger := opts.withLogger

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authn(r) {
				next.ServeHTTP(w, r)
				return
			}

			reqID, err := uuid.GenerateUUID()
			if err != nil {
				reqID = "unknown"
			}

			target, err := loginURL(r)
			if err != nil {
				logger.Error("computing login url failed", "request_id", reqID, "path", r.URL.Path, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			rw := redirect.NewResponseWriter(w)
			if err := s.Redirect(rw, r, target); err != nil {
				logger.Error("answering unauthenticated request failed", "request_id", reqID, "path", r.URL.Path, "error", err)
				return
			}
			logger.Debug("unauthenticated request answered", "request_id", reqID, "path", r.URL.Path)
		})
	}, nil
}
