// Copyright (c) Jeeplatform
// SPDX-License-Identifier: MPL-2.0

package redirect

import (
	"fmt"
	"net/http"
)

// RejectStrategy answers an unauthenticated request with a bare status code
// and a small JSON body instead of redirecting. Suited to API or XHR clients
// that cannot usefully follow a redirect to an HTML login page. Nothing here
// inspects the request to guess the client type; the enclosing framework
// chooses this strategy for the routes (or clients) it applies to.
type RejectStrategy struct {
	statusCode int
	body       []byte
}

// NewRejectStrategy creates a RejectStrategy. Supports WithStatusCode for
// choosing a status other than 401 Unauthorized; 3xx codes are rejected
// since rejection and redirection are mutually exclusive policies.
func NewRejectStrategy(opt ...Option) (*RejectStrategy, error) {
	const op = "redirect.NewRejectStrategy"
	opts := getStrategyOpts(opt...)

	code := opts.withStatusCode
	if code == 0 {
		code = http.StatusUnauthorized
	}
	switch {
	case code >= 300 && code <= 399:
		return nil, fmt.Errorf("%s: status code %d is a redirect code, use RedirectStrategy: %w", op, code, ErrInvalidParameter)
	case code < 100 || code > 599:
		return nil, fmt.Errorf("%s: status code %d is not a valid http status: %w", op, code, ErrInvalidParameter)
	}

	return &RejectStrategy{
		statusCode: code,
		body:       []byte(fmt.Sprintf(`{"code":%d}`, code)),
	}, nil
}

// Redirect finalizes the response with the strategy's status code and a JSON
// body of the form {"code":401}. targetURL is ignored; it is part of the
// Strategy signature so the framework can swap strategies without caring
// which is active. The commitment and transport error semantics match
// RedirectStrategy.Redirect.
func (s *RejectStrategy) Redirect(w http.ResponseWriter, r *http.Request, targetURL string) error {
	const op = "redirect.RejectStrategy.Redirect"
	if w == nil {
		return fmt.Errorf("%s: missing response writer: %w", op, ErrNilParameter)
	}
	if c, ok := w.(committedChecker); ok && c.Committed() {
		return fmt.Errorf("%s: %w", op, ErrResponseCommitted)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(s.statusCode)
	if _, err := w.Write(s.body); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrTransport, err)
	}

	return flush(op, w)
}
