// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the client for the Askwire answers backend.
//
// The backend owns every non-trivial computation: retrieval, generation,
// and citation resolution. This package is a thin wrapper around its
// generate endpoint plus the error taxonomy the UI classifies against.
//
// # Endpoints
//
//   - POST /v1/generate  {query, conversation_id?} ->
//     {conversation_id, answer, citations}
//   - GET  /health       reachability probe
//
// # Error taxonomy
//
// Failures come in three kinds, all of which Humanize degrades to a single
// displayable string:
//
//   - *APIError: the backend rejected the request (carries code/message)
//   - *NetworkError: the transport failed before a response arrived
//   - anything else: unknown, displayed via its Error() text
package api
