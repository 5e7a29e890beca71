package registrations

import (
	"context"
	"hospital-portal-service/internal/app/models"
	"hospital-portal-service/internal/pkg/constvars"
	"hospital-portal-service/internal/pkg/dto/requests"
	"hospital-portal-service/internal/pkg/dto/responses"
	"hospital-portal-service/internal/pkg/exceptions"
	"time"
)

type registrationUsecase struct {
	RegistrationRepository RegistrationRepository
}

func NewRegistrationUsecase(registrationRepository RegistrationRepository) RegistrationUsecase {
	return &registrationUsecase{
		RegistrationRepository: registrationRepository,
	}
}

func (uc *registrationUsecase) Submit(ctx context.Context, request *requests.CreateRegistration) (*responses.CreateRegistration, error) {
	now := time.Now().UTC()
	registrationModel := &models.Registration{
		FullName:      request.FullName,
		Email:         request.Email,
		Phone:         request.Phone,
		BirthDate:     request.BirthDate,
		Gender:        request.Gender,
		Address:       request.Address,
		Department:    request.Department,
		PreferredDate: request.PreferredDate,
		Symptoms:      request.Symptoms,
		Status:        constvars.RegistrationStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	registrationID, err := uc.RegistrationRepository.CreateRegistration(ctx, registrationModel)
	if err != nil {
		return nil, err
	}

	return &responses.CreateRegistration{
		ID:      registrationID,
		Message: constvars.RegistrationCreatedSuccess,
	}, nil
}

func (uc *registrationUsecase) ListPublic(ctx context.Context, limit int) ([]responses.RegistrationPublic, error) {
	registrationModels, err := uc.RegistrationRepository.FindRegistrations(ctx, limit)
	if err != nil {
		return nil, err
	}

	// Empty result is not an error, the client receives an empty array.
	publicRegistrations := make([]responses.RegistrationPublic, 0, len(registrationModels))
	for _, registrationModel := range registrationModels {
		publicRegistrations = append(publicRegistrations, buildRegistrationPublic(&registrationModel))
	}
	return publicRegistrations, nil
}

func (uc *registrationUsecase) GetByID(ctx context.Context, registrationID string) (*responses.RegistrationPublic, error) {
	registrationModel, err := uc.RegistrationRepository.FindByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if registrationModel == nil {
		return nil, exceptions.ErrRegistrationNotFound(nil)
	}

	publicRegistration := buildRegistrationPublic(registrationModel)
	return &publicRegistration, nil
}

func (uc *registrationUsecase) UpdateStatus(ctx context.Context, registrationID, status string) error {
	matched, err := uc.RegistrationRepository.UpdateStatus(ctx, registrationID, status)
	if err != nil {
		return err
	}
	if !matched {
		return exceptions.ErrRegistrationNotFound(nil)
	}
	return nil
}

// buildRegistrationPublic projects a stored registration to the public view.
// Everything it leaves out (email, phone, address, symptoms, birth date,
// gender) must stay out: no list or get endpoint serves those fields.
func buildRegistrationPublic(registrationModel *models.Registration) responses.RegistrationPublic {
	var preferredDate *string
	if registrationModel.PreferredDate != "" {
		preferredDate = &registrationModel.PreferredDate
	}

	return responses.RegistrationPublic{
		ID:            registrationModel.ID,
		FullName:      registrationModel.FullName,
		Department:    registrationModel.Department,
		PreferredDate: preferredDate,
		Status:        registrationModel.Status,
		CreatedAt:     registrationModel.CreatedAt,
	}
}
