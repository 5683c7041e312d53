package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ride-hail/internal/captain/handler/dto"
	token "ride-hail/internal/captain/jwt"
	"ride-hail/internal/captain/model"
	"ride-hail/internal/captain/service"
	"ride-hail/internal/common/logger"
	"ride-hail/internal/common/middleware"
	"ride-hail/internal/common/rmq"
)

const maxBodyBytes = 1 << 20

type CaptainHandler struct {
	registrar Registrar
	tokens    TokenIssuer
	events    EventPublisher
}

// NewCaptainHandler wires the registration endpoint. events may be nil, in
// which case no registration event is published.
func NewCaptainHandler(registrar Registrar, tokens TokenIssuer, events EventPublisher) *CaptainHandler {
	return &CaptainHandler{registrar: registrar, tokens: tokens, events: events}
}

func (h *CaptainHandler) Register(w http.ResponseWriter, r *http.Request) {
	const action = "register_captain"
	ctx := r.Context()
	requestID := middleware.RequestIDFromContext(ctx)

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "only POST allowed")
		return
	}

	var body dto.RegisterCaptainBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		logger.Warn(action, "invalid request body", requestID, "", err.Error())
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	captain, err := h.registrar.Register(ctx, body.ToRequest())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAllFieldsRequired):
			logger.Warn(action, "validation failed", requestID, "", err.Error())
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, model.ErrEmailTaken):
			logger.Warn(action, "email already registered", requestID, "", err.Error())
			writeError(w, http.StatusConflict, err.Error())
		default:
			logger.Error(action, "failed to register captain", requestID, "", err.Error())
			writeError(w, http.StatusInternalServerError, "failed to register captain")
		}
		return
	}

	// The captain is stored by now, so a token failure still answers 201.
	access, refresh, err := h.tokens.GenerateTokens(captain.ID, token.RoleDriver)
	if err != nil {
		logger.Warn(action, "failed to generate tokens, responding without them", requestID, captain.ID, err.Error())
		access, refresh = "", ""
	}

	if h.events != nil {
		msg := rmq.CaptainRegisteredMessage{
			CaptainID:    captain.ID,
			Email:        captain.Email,
			VehicleType:  string(captain.Vehicle.VehicleType),
			Capacity:     captain.Vehicle.Capacity,
			RegisteredAt: registeredAt(captain),
			RequestID:    requestID,
		}
		if err := h.events.PublishCaptainRegistered(ctx, msg); err != nil {
			logger.Warn(action, "failed to publish registration event", requestID, captain.ID, err.Error())
		}
	}

	logger.Info(action, "captain successfully registered", requestID, captain.ID)
	writeJSON(w, http.StatusCreated, dto.RegisterCaptainResponse{
		Captain:      captain,
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func (h *CaptainHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func registeredAt(c model.Captain) time.Time {
	if c.CreatedAt.IsZero() {
		return time.Now().UTC()
	}
	return c.CreatedAt
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}
