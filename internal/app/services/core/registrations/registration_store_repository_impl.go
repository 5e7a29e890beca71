package registrations

import (
	"context"
	"hospital-portal-service/internal/app/models"
	"hospital-portal-service/internal/app/services/shared/documentstore"
	"hospital-portal-service/internal/pkg/constvars"
	"time"
)

type RegistrationStoreRepository struct {
	Store documentstore.DocumentStore
}

func NewRegistrationStoreRepository(store documentstore.DocumentStore) RegistrationRepository {
	return &RegistrationStoreRepository{
		Store: store,
	}
}

func (repo *RegistrationStoreRepository) CreateRegistration(ctx context.Context, registration *models.Registration) (string, error) {
	return repo.Store.Create(ctx, constvars.MongoCollectionRegistrations, registration)
}

func (repo *RegistrationStoreRepository) FindRegistrations(ctx context.Context, limit int) ([]models.Registration, error) {
	var registrationModels []models.Registration
	err := repo.Store.List(ctx, constvars.MongoCollectionRegistrations, limit, &registrationModels)
	if err != nil {
		return nil, err
	}
	return registrationModels, nil
}

func (repo *RegistrationStoreRepository) FindByID(ctx context.Context, registrationID string) (*models.Registration, error) {
	var registration models.Registration
	found, err := repo.Store.FindByID(ctx, constvars.MongoCollectionRegistrations, registrationID, &registration)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &registration, nil
}

func (repo *RegistrationStoreRepository) UpdateStatus(ctx context.Context, registrationID, status string) (bool, error) {
	return repo.Store.UpdateFields(ctx, constvars.MongoCollectionRegistrations, registrationID, map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	})
}
