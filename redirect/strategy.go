// Copyright (c) Jeeplatform
// SPDX-License-Identifier: MPL-2.0

package redirect

import (
	"net/http"
)

// Strategy defines how to answer a request that the enclosing authentication
// framework determined to be unauthenticated. The framework computes the
// identity provider login URL and invokes the strategy at most once per
// request, before the response has been committed.
type Strategy interface {
	// Redirect finalizes the response for an unauthenticated request.
	// targetURL is the login URL computed by the framework; implementations
	// treat it as opaque data. The request is provided for implementations
	// that need request context and may be ignored.
	Redirect(w http.ResponseWriter, r *http.Request, targetURL string) error
}

// committedChecker is the narrow interface strategies use to detect a
// response that has already been committed. *ResponseWriter satisfies it, as
// does any framework wrapper exposing the same method.
type committedChecker interface {
	Committed() bool
}
