// Copyright (c) Jeeplatform
// SPDX-License-Identifier: MPL-2.0

// ssoredirect provides the pieces a single sign-on client needs to answer
// unauthenticated requests: pluggable strategies (redirect the browser to
// the identity provider login URL, or reject API clients with a bare status)
// and the http middleware that invokes them.
//
// See README.md
package ssoredirect
