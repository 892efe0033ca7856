package services

import (
	"gorm.io/gorm"

	"github.com/Patricia-Kubende/MaizeMate-Backend/ml"
)

type ServiceManager struct {
	AuthenticationService AuthenticationService
	PredictionService     PredictionService
}

func NewServiceManager(db *gorm.DB, model *ml.Model, secret []byte) *ServiceManager {
	return &ServiceManager{
		AuthenticationService: NewAuthenticationService(db, secret),
		PredictionService:     NewPredictionService(db, model),
	}
}
