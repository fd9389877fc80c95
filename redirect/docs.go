// Copyright (c) Jeeplatform
// SPDX-License-Identifier: MPL-2.0

/*
redirect is a package that provides pluggable strategies for answering
requests the enclosing single sign-on framework has determined to be
unauthenticated.

The framework decides that a request carries no authenticated principal and
computes the identity provider's login URL (typically including a service
parameter naming the originally requested resource). A Strategy then decides
how that decision reaches the client: RedirectStrategy hands the browser a
3xx redirect to the login URL, RejectStrategy answers API-style clients with
a bare status code and a small JSON body. Which strategy is active is an
explicit construction-time choice made by the caller; nothing in this package
inspects the request to guess the client type.

A Strategy must be invoked at most once per request, before anything has been
written to the response. Wrap the response with NewResponseWriter so a second
invocation, or an invocation after other code has already committed the
response, is reported as an error instead of reaching the wire.
*/
package redirect
