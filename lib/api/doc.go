// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the HTTP client for the Embryotech platform API.
//
// Every call distinguishes two failure classes the UI treats
// differently: a transport failure (the request never completed)
// surfaces as an ordinary wrapped error, while a non-success HTTP
// response surfaces as an *Error carrying the status code and the
// server-provided message so the UI can show it verbatim.
package api
