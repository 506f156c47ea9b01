package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"clinic-engagement-engine/pkg/engine"
	"clinic-engagement-engine/pkg/models"
)

// Engine is the part of engine.Engine the HTTP surface needs.
type Engine interface {
	OpenSession(ctx context.Context) (*models.OpenResult, error)
	SubmitUtterance(ctx context.Context, id models.SessionID, text string) (*models.TurnResult, error)
	CloseSession(ctx context.Context, id models.SessionID) error
	Transcript(ctx context.Context, id models.SessionID) ([]models.Message, error)
	ActiveSessions() int
}

type Handler struct {
	engine Engine
	logger *logrus.Logger
	podID  string
}

func NewHandler(engine Engine, logger *logrus.Logger, podID string) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
		podID:  podID,
	}
}

func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	res, err := h.engine.OpenSession(r.Context())
	if err != nil {
		h.fail(w, "", err)
		return
	}

	writeJSON(w, http.StatusCreated, res)

	h.logger.WithField("session_id", res.SessionID).Debug("Opened session over HTTP")
}

func (h *Handler) SubmitUtterance(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if sessionID == "" {
		http.Error(w, "Missing session ID", http.StatusBadRequest)
		return
	}

	var request struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.engine.SubmitUtterance(r.Context(), models.SessionID(sessionID), request.Text)
	if err != nil {
		h.fail(w, sessionID, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Transcript(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	messages, err := h.engine.Transcript(r.Context(), models.SessionID(sessionID))
	if err != nil {
		h.fail(w, sessionID, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"messages":   messages,
	})
}

func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := h.engine.CloseSession(r.Context(), models.SessionID(sessionID)); err != nil {
		h.fail(w, sessionID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pod_id":          h.podID,
		"active_sessions": h.engine.ActiveSessions(),
		"timestamp":       time.Now(),
	})
}

func (h *Handler) fail(w http.ResponseWriter, sessionID string, err error) {
	switch {
	case errors.Is(err, engine.ErrEmptyUtterance):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, engine.ErrSessionClosed):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, engine.ErrShutdown):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "Request cancelled", http.StatusServiceUnavailable)
	default:
		h.logger.WithError(err).WithField("session_id", sessionID).Error("Engine request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
