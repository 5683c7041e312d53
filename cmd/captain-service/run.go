package captain_service

import (
	"net/http"

	"ride-hail/internal/captain/handler"
	token "ride-hail/internal/captain/jwt"
	"ride-hail/internal/captain/service"
	"ride-hail/internal/common/logger"
)

// Run registers the captain routes on mux. events may be nil.
func Run(store service.CaptainStore, mux *http.ServeMux, jwtManager *token.Manager, events handler.EventPublisher, opts ...service.Option) {
	logger.SetServiceName("captain-service")

	logger.Info("startup", "Starting Captain Service...", "", "")

	registration := service.NewRegistrationService(store, opts...)
	captainHandler := handler.NewCaptainHandler(registration, jwtManager, events)

	mux.HandleFunc("POST /captains/register", captainHandler.Register)
	mux.HandleFunc("GET /health", captainHandler.Health)

	logger.Info("startup_complete", "Captain Service started successfully", "", "")
}
