// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself.
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidPathParam is returned when a numeric path parameter cannot
	// be parsed.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrNoIdentity is returned when a protected handler runs without an
	// identity in the request context.
	ErrNoIdentity = errors.New("no identity in request context")
)

// Messages written by the auth gate and the role check.
const (
	msgAuthNotReady     = "Authentication service not ready"
	msgAuthRequired     = "Authentication required"
	msgInvalidToken     = "Invalid or expired token"
	msgForbidden        = "Insufficient permissions"
	msgInternal         = "Internal server error"
	msgTooManyRequests  = "Too many requests"
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
)
