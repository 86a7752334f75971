package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertical_content_generator/generator"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(map[generator.ModelChoice]generator.LLMClient{
		generator.ModelOpenAI: generator.MockLLM{},
	}, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	return srv
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCaptionsEndpoint(t *testing.T) {
	srv := testServer(t)
	routes := srv.Routes()

	rec := postJSON(t, routes, "/api/captions", generateReq{
		Brief:    "Launch our new protein bar",
		Industry: "Fitness",
		Model:    "openai",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp generateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
	for _, item := range resp.Items {
		assert.Equal(t, generator.StatusConfirmed, item.Status)
		assert.NotEmpty(t, item.Text)
	}
	require.NotEmpty(t, resp.ID)

	// Stored result is retrievable.
	req := httptest.NewRequest(http.MethodGet, "/api/generations/"+resp.ID, nil)
	getRec := httptest.NewRecorder()
	routes.ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)
	var stored StoredResult
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &stored))
	assert.Equal(t, "captions", stored.Kind)
	assert.Equal(t, resp.Items, stored.Items)

	// And renders as an HTML preview.
	req = httptest.NewRequest(http.MethodGet, "/api/generations/"+resp.ID+"/preview", nil)
	prevRec := httptest.NewRecorder()
	routes.ServeHTTP(prevRec, req)
	require.Equal(t, http.StatusOK, prevRec.Code)
	assert.Contains(t, prevRec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, prevRec.Body.String(), resp.Items[0].Text)
}

func TestIdeasEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := postJSON(t, srv.Routes(), "/api/ideas", generateReq{
		Brief:    "Back to school sale",
		Industry: "Education",
		Model:    "gpt-4", // original dropdown label maps to the openai binding
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp generateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 3)
}

func TestCombinedEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := postJSON(t, srv.Routes(), "/api/generate", generateReq{
		Brief:    "  Summer playlist push  ",
		Industry: "Music",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp combinedResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Summer playlist push", resp.Brief)
	assert.Len(t, resp.Captions, 3)
	assert.Len(t, resp.Ideas, 3)
}

func TestInputErrorsReturnUserMessage(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name    string
		req     generateReq
		wantMsg string
	}{
		{name: "empty brief", req: generateReq{Brief: "   ", Industry: "Fitness"}, wantMsg: "Please enter a campaign brief"},
		{name: "missing industry", req: generateReq{Brief: "a brief"}, wantMsg: "Please select an industry"},
		{name: "unknown industry", req: generateReq{Brief: "a brief", Industry: "Blockchain"}, wantMsg: "Unknown industry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, srv.Routes(), "/api/captions", tt.req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp errorResp
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.wantMsg)
		})
	}
}

func TestUnconfiguredModelRejected(t *testing.T) {
	srv := testServer(t) // only the openai binding is registered

	rec := postJSON(t, srv.Routes(), "/api/captions", generateReq{
		Brief:    "a brief",
		Industry: "Fitness",
		Model:    "claude",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestGenerationFailureIsBadGateway(t *testing.T) {
	srv, err := New(map[generator.ModelChoice]generator.LLMClient{
		generator.ModelOpenAI: failingLLM{},
	}, log.New(io.Discard, "", 0))
	require.NoError(t, err)

	rec := postJSON(t, srv.Routes(), "/api/captions", generateReq{
		Brief:    "a brief",
		Industry: "Fitness",
	})

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "generation failed")
}

type failingLLM struct{}

func (failingLLM) Complete(context.Context, generator.Prompt) (string, error) {
	return "", errors.New("provider down")
}

func TestIndustriesEndpoint(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/industries", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var industries []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &industries))
	assert.Len(t, industries, 14)
	assert.Contains(t, industries, "Fitness")
}

func TestUnknownGenerationNotFound(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/generations/nope", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/captions", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
