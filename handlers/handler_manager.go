package handlers

import (
	"github.com/Patricia-Kubende/MaizeMate-Backend/services"
)

type HandlerManager struct {
	AuthenticationHandler *AuthenticationHandler
	PredictionHandler     *PredictionHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		AuthenticationHandler: NewAuthenticationHandler(sm.AuthenticationService),
		PredictionHandler:     NewPredictionHandler(sm.PredictionService),
	}
}
