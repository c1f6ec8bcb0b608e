package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ngamdu/Meditouch/internal/application/usecase"
	"github.com/Ngamdu/Meditouch/internal/domain/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockProvider struct {
	mock.Mock
	configured bool
}

func (m *mockProvider) Configured() bool { return m.configured }

func (m *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	out, _ := args.Get(0).(string)
	return out, args.Error(1)
}

func newTestHandler(provider *mockProvider) http.Handler {
	return NewHandler(usecase.NewMenuService(provider, nil, nil), nil).Routes()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestGenerateMenu_NotConfigured(t *testing.T) {
	bodies := []string{`{"subject":"Italian"}`, `{}`, `not json`, ``}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			provider := &mockProvider{configured: false}
			rec := doRequest(t, newTestHandler(provider), http.MethodPost, GenerateMenuPath, body)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, map[string]any{"error": "Google AI API key not configured"}, decodeBody(t, rec))
			provider.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateMenu_SubjectRequired(t *testing.T) {
	bodies := []string{`{}`, `{"subject":""}`, `{"subject":"   "}`, `{"subject":42}`, `[]`, `null`, `not json`, ``}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			provider := &mockProvider{configured: true}
			rec := doRequest(t, newTestHandler(provider), http.MethodPost, GenerateMenuPath, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, map[string]any{"error": "Subject is required"}, decodeBody(t, rec))
			provider.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateMenu_Success(t *testing.T) {
	provider := &mockProvider{configured: true}
	text := "**Appetizer:** Caprese\n\n**Main:** Osso buco\n\n**Dessert:** Panna cotta  \n"
	provider.On("Generate", mock.Anything, menu.Prompt("Italian")).Return(text, nil).Once()

	rec := doRequest(t, newTestHandler(provider), http.MethodPost, GenerateMenuPath, `{"subject":"Italian"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, map[string]any{"success": true, "menu": text}, decodeBody(t, rec))
	provider.AssertExpectations(t)
}

func TestGenerateMenu_ProviderFailure(t *testing.T) {
	provider := &mockProvider{configured: true}
	provider.On("Generate", mock.Anything, mock.Anything).
		Return("", errors.New("googleapi: Error 403 API key AIzaSECRET invalid")).Once()

	rec := doRequest(t, newTestHandler(provider), http.MethodPost, GenerateMenuPath, `{"subject":"Thai"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "AIzaSECRET")
	assert.NotContains(t, rec.Body.String(), "googleapi")
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to generate menu", body["error"])
	assert.Equal(t, "Failed to generate menu with AI", body["details"])
	provider.AssertExpectations(t)
}

func TestGenerateMenu_ProviderFailureLogsCause(t *testing.T) {
	provider := &mockProvider{configured: true}
	provider.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("upstream 503")).Once()

	core, logs := observer.New(zap.ErrorLevel)
	h := NewHandler(usecase.NewMenuService(provider, nil, nil), zap.New(core)).Routes()

	rec := doRequest(t, h, http.MethodPost, GenerateMenuPath, `{"subject":"Thai"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "upstream 503")

	entries := logs.FilterMessage("error generating menu").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "upstream 503")
}

func TestPublicDetails(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "classified error hides cause",
			err:  menu.NewError(menu.KindGeneration, menu.MessageProviderFailed, errors.New("secret upstream text")),
			want: menu.MessageProviderFailed,
		},
		{
			name: "unclassified error",
			err:  errors.New("secret upstream text"),
			want: menu.MessageProviderFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicDetails(tt.err))
		})
	}
}

func TestPreflight(t *testing.T) {
	for _, configured := range []bool{true, false} {
		provider := &mockProvider{configured: configured}
		rec := doRequest(t, newTestHandler(provider), http.MethodOptions, GenerateMenuPath, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
		assert.Empty(t, rec.Body.String())
	}
}

func TestRoutes(t *testing.T) {
	h := newTestHandler(&mockProvider{configured: true})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "page", method: http.MethodGet, path: "/", want: http.StatusOK},
		{name: "get on api", method: http.MethodGet, path: GenerateMenuPath, want: http.StatusMethodNotAllowed},
		{name: "uppercase duplicate route", method: http.MethodPost, path: "/API/generate-menu", want: http.StatusNotFound},
		{name: "unknown", method: http.MethodGet, path: "/dashboard", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, tt.method, tt.path, `{"subject":"Italian"}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPage(t *testing.T) {
	rec := doRequest(t, newTestHandler(&mockProvider{}), http.MethodGet, "/", "")

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), GenerateMenuPath)
	assert.Contains(t, rec.Body.String(), `input.value.trim() === ""`)
}
