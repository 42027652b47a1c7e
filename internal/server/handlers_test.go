package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/contractor-intake/internal/config"
	"github.com/jonathan/contractor-intake/internal/extraction"
)

// fakeExtractor is a canned-response extraction client for handler tests.
type fakeExtractor struct {
	response string
	err      error
}

func (f *fakeExtractor) GenerateJSON(_ context.Context, _ string, _ extraction.ModelTier) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeExtractor) Close() error { return nil }

func testServer(t *testing.T, extractor extraction.Client) *Server {
	t.Helper()

	passwords := &config.PasswordConfig{BcryptCost: 10}
	hash, err := passwords.HashPassword("hunter22")
	require.NoError(t, err)

	s := &Server{
		extractor:  extractor,
		jwtService: testJWTService(24),
	}
	s.authHandler = NewAuthHandler("admin@example.com", hash, passwords, s.jwtService)
	return s
}

func authedRequest(t *testing.T, s *Server, method, target, body string) *http.Request {
	t.Helper()

	token, err := s.jwtService.GenerateToken("admin@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRoutes_HealthIsOpen(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestRoutes_ParseRequiresAuth(t *testing.T) {
	s := testServer(t, &fakeExtractor{response: "{}"})

	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(`{"text":"hello"}`))
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleParse_TextSource(t *testing.T) {
	payload := `{
		"fullName": {"raw": "jane doe", "parsed": "Jane Doe"},
		"email": {"raw": "jane@example.com", "parsed": "jane@example.com"},
		"skills": {"raw": "Python, React, SQL", "parsed": "Python, React, SQL"}
	}`
	s := testServer(t, &fakeExtractor{response: payload})

	req := authedRequest(t, s, http.MethodPost, "/parse", `{"text":"Jane Doe\njane@example.com"}`)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Record.FullName)
	assert.Equal(t, "jane@example.com", resp.Record.Email)
	assert.Len(t, resp.Keywords.Skills, 3)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, "text", resp.Metadata.Source)
	assert.True(t, resp.Metadata.HasEmail)
}

func TestHandleParse_HTMLSource(t *testing.T) {
	payload := `{"fullName": {"raw": "Jane Doe", "parsed": "Jane Doe"}}`
	s := testServer(t, &fakeExtractor{response: payload})

	body := `{"html":"<html><body><h1>Jane Doe</h1><p>Engineer</p></body></html>"}`
	req := authedRequest(t, s, http.MethodPost, "/parse", body)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Record.FullName)
	assert.Equal(t, "html", resp.Metadata.Source)
}

func TestHandleParse_InvalidRequests(t *testing.T) {
	s := testServer(t, &fakeExtractor{response: "{}"})

	tests := []struct {
		name string
		body string
	}{
		{"no source", `{}`},
		{"two sources", `{"text":"a","html":"<p>b</p>"}`},
		{"bad json", `{ nope`},
		{"whitespace only text", `{"text":"  \n\n  "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest(t, s, http.MethodPost, "/parse", tt.body)
			w := httptest.NewRecorder()
			s.routes().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleParse_ExtractionFailure(t *testing.T) {
	s := testServer(t, &fakeExtractor{err: assert.AnError})

	req := authedRequest(t, s, http.MethodPost, "/parse", `{"text":"Jane Doe"}`)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandleParse_ExtractorNotConfigured(t *testing.T) {
	s := testServer(t, nil)

	req := authedRequest(t, s, http.MethodPost, "/parse", `{"text":"Jane Doe"}`)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContractorEndpoints_NoDatabase(t *testing.T) {
	s := testServer(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"create", http.MethodPost, "/contractors", `{"record":{"full_name":"Jane"}}`},
		{"list", http.MethodGet, "/contractors", ""},
		{"get", http.MethodGet, "/contractors/4f2d7a10-0000-0000-0000-000000000000", ""},
		{"keywords", http.MethodGet, "/contractors/4f2d7a10-0000-0000-0000-000000000000/keywords", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest(t, s, tt.method, tt.target, tt.body)
			w := httptest.NewRecorder()
			s.routes().ServeHTTP(w, req)

			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		})
	}
}
