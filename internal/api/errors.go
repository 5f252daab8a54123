// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the client for the Askwire answers backend.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// =============================================================================
// ERRORS
// =============================================================================

// Error variables for common backend failures.
var (
	// ErrNotConfigured indicates the backend base URL is not set.
	ErrNotConfigured = errors.New("backend not configured")

	// ErrAuthFailed indicates authentication failed (invalid or expired API key).
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRateLimited indicates too many requests were made.
	ErrRateLimited = errors.New("rate limited")

	// ErrUnavailable indicates the backend returned a server error.
	ErrUnavailable = errors.New("service unavailable")
)

// APIError represents an application-level error returned by the backend:
// the request reached the service and was rejected.
type APIError struct {
	Code    string
	Message string
	Status  int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("askwire error [%s] (HTTP %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("askwire error (HTTP %d): %s", e.Status, e.Message)
}

// Is maps the error's status code onto the package sentinels so that
// errors.Is(err, ErrRateLimited) works on typed backend rejections.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAuthFailed:
		return e.Status == 401 || e.Status == 403
	case ErrRateLimited:
		return e.Status == 429
	case ErrUnavailable:
		return e.Status >= 500
	}
	return false
}

// NetworkError represents a transport-level failure: the request never got a
// response from the service.
type NetworkError struct {
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// IsAPIError reports whether err is an application-level backend rejection.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsNetworkError reports whether err is a transport failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// wrapTransportError classifies a failed http.Client.Do error. Context
// cancellation is passed through untouched so callers can distinguish it.
func wrapTransportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &NetworkError{Err: err}
}

// Humanize degrades any error from the client into the single string the
// chat transcript displays. Classification order: application message,
// network message, generic error text, fallback.
func Humanize(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fmt.Sprintf("The service rejected the request (HTTP %d).", apiErr.Status)
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "Could not reach the service. Check your connection and try again."
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Something went wrong. Please try again."
}
