// Package httpapi exposes menu generation over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ngamdu/Meditouch/internal/domain/menu"
	"go.uber.org/zap"
)

// GenerateMenuPath is the canonical menu generation route.
const GenerateMenuPath = "/api/generate-menu"

const maxBodyBytes = 1 << 20

// MenuGenerator is the use case behind the endpoint.
type MenuGenerator interface {
	Configured() bool
	Generate(ctx context.Context, subject string) (string, error)
}

// Handler serves the menu API and the browser page.
type Handler struct {
	menus  MenuGenerator
	logger *zap.Logger
}

// NewHandler constructs a Handler. A nil logger discards logs.
func NewHandler(menus MenuGenerator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return new(Handler{menus: menus, logger: logger})
}

// Routes returns the router with request logging applied.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+GenerateMenuPath, h.generateMenu)
	mux.HandleFunc("OPTIONS "+GenerateMenuPath, h.preflight)
	mux.HandleFunc("GET /{$}", servePage)
	return withRequestLogging(h.logger, mux)
}

func (h *Handler) generateMenu(w http.ResponseWriter, r *http.Request) {
	if h.menus == nil || !h.menus.Configured() {
		writeJSON(w, http.StatusInternalServerError, menu.ErrorResponse{Error: menu.MessageNotConfigured})
		return
	}

	var req menu.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.Debug("unreadable menu request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, menu.ErrorResponse{Error: menu.MessageSubjectRequired})
		return
	}

	text, err := h.menus.Generate(r.Context(), req.Subject)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu.Response{Success: true, Menu: text})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch menu.KindOf(err) {
	case menu.KindConfiguration:
		writeJSON(w, http.StatusInternalServerError, menu.ErrorResponse{Error: menu.MessageNotConfigured})
	case menu.KindValidation:
		writeJSON(w, http.StatusBadRequest, menu.ErrorResponse{Error: menu.MessageSubjectRequired})
	default:
		h.logger.Error("error generating menu", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, menu.ErrorResponse{
			Error:   menu.MessageGenerateFailed,
			Details: publicDetails(err),
		})
	}
}

// publicDetails returns the classified message of err. The underlying cause
// only goes to the log.
func publicDetails(err error) string {
	var menuErr *menu.Error
	if errors.As(err, &menuErr) && menuErr.Message != "" {
		return menuErr.Message
	}
	return menu.MessageProviderFailed
}

func (h *Handler) preflight(w http.ResponseWriter, _ *http.Request) {
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
