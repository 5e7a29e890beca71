package registrations

import (
	"context"
	"hospital-portal-service/internal/app/models"
	"hospital-portal-service/internal/pkg/dto/requests"
	"hospital-portal-service/internal/pkg/dto/responses"
)

type RegistrationUsecase interface {
	Submit(ctx context.Context, request *requests.CreateRegistration) (*responses.CreateRegistration, error)
	ListPublic(ctx context.Context, limit int) ([]responses.RegistrationPublic, error)
	GetByID(ctx context.Context, registrationID string) (*responses.RegistrationPublic, error)
	UpdateStatus(ctx context.Context, registrationID, status string) error
}

type RegistrationRepository interface {
	CreateRegistration(ctx context.Context, registration *models.Registration) (registrationID string, err error)
	FindRegistrations(ctx context.Context, limit int) ([]models.Registration, error)
	FindByID(ctx context.Context, registrationID string) (*models.Registration, error)
	UpdateStatus(ctx context.Context, registrationID, status string) (matched bool, err error)
}
