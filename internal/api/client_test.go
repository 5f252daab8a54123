// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the client for the Askwire answers backend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// GENERATE TESTS
// =============================================================================

func TestClient_Generate_Success(t *testing.T) {
	var gotReq GenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/generate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(GenerateResponse{
			ConversationID: "conv_1",
			Answer:         "Go was announced in 2009.",
			Citations: []Citation{
				{Number: 1, Title: "Go Blog", URL: "https://go.dev/blog"},
				{Number: 2, URL: "https://en.wikipedia.org/wiki/Go"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Generate(context.Background(), "When was Go announced?", "")
	require.NoError(t, err)

	assert.Equal(t, "When was Go announced?", gotReq.Query)
	assert.Empty(t, gotReq.ConversationID, "first call must omit the identifier")
	assert.Equal(t, "conv_1", resp.ConversationID)
	assert.Equal(t, "Go was announced in 2009.", resp.Answer)
	assert.Len(t, resp.Citations, 2)
}

func TestClient_Generate_ThreadsConversationID(t *testing.T) {
	var gotReq GenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(GenerateResponse{ConversationID: "conv_2", Answer: "답변"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Generate(context.Background(), "follow-up", "conv_1")
	require.NoError(t, err)

	assert.Equal(t, "conv_1", gotReq.ConversationID)
	assert.Equal(t, "conv_2", resp.ConversationID)
}

func TestClient_Generate_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-aw-test", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(GenerateResponse{ConversationID: "conv_1", Answer: "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL).WithAPIKey("sk-aw-test")
	_, err := client.Generate(context.Background(), "q", "")
	require.NoError(t, err)
}

func TestClient_Generate_BlankQuery(t *testing.T) {
	client := NewClient("http://localhost:0")
	_, err := client.Generate(context.Background(), "   \t ", "")
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
}

// =============================================================================
// ERROR MAPPING TESTS
// =============================================================================

func TestClient_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":"rate_limited","message":"rate limited"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Generate(context.Background(), "q", "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "rate limited", apiErr.Message)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.True(t, errors.Is(err, ErrRateLimited))
	assert.False(t, errors.Is(err, ErrAuthFailed))
}

func TestClient_Generate_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid token"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Generate(context.Background(), "q", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAuthFailed))
}

func TestClient_Generate_UnparseableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Generate(context.Background(), "q", "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream exploded", apiErr.Message)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestClient_Generate_NetworkError(t *testing.T) {
	// Connect to a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.Generate(context.Background(), "q", "")
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
	assert.False(t, IsAPIError(err))
}

// =============================================================================
// HEALTH TESTS
// =============================================================================

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assert.NoError(t, client.Health(context.Background()))
}

func TestClient_Health_Down(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Health(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

// =============================================================================
// HUMANIZE TESTS
// =============================================================================

func TestHumanize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "api error uses backend message",
			err:  &APIError{Message: "rate limited", Status: 429},
			want: "rate limited",
		},
		{
			name: "api error without message",
			err:  &APIError{Status: 500},
			want: "The service rejected the request (HTTP 500).",
		},
		{
			name: "network error",
			err:  &NetworkError{Err: errors.New("dial tcp: connection refused")},
			want: "Could not reach the service. Check your connection and try again.",
		},
		{
			name: "unknown error falls back to its text",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Humanize(tt.err))
		})
	}
}

func TestSources_Conversion(t *testing.T) {
	resp := &GenerateResponse{
		Citations: []Citation{
			{Number: 1, Title: "Titled", URL: "https://a.example", Site: "a.example"},
			{Number: 2, URL: "https://b.example"},
		},
	}

	sources := resp.Sources()
	require.Len(t, sources, 2)
	assert.Equal(t, "Titled", sources[0].DisplayTitle())
	assert.Equal(t, "Source 2", sources[1].DisplayTitle())

	empty := &GenerateResponse{}
	assert.Nil(t, empty.Sources())
}
