package registrations

import (
	"context"
	"fmt"
	"hospital-portal-service/internal/app/models"
	"hospital-portal-service/internal/pkg/constvars"
	"hospital-portal-service/internal/pkg/dto/requests"
	"hospital-portal-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeRegistrationRepository keeps registrations in memory, newest first on
// reads, the way the store adapter lists them.
type fakeRegistrationRepository struct {
	stored []models.Registration
	nextID int
	err    error
}

func (f *fakeRegistrationRepository) CreateRegistration(ctx context.Context, registration *models.Registration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.nextID++
	registration.ID = fmt.Sprintf("66f%021d", f.nextID)
	f.stored = append(f.stored, *registration)
	return registration.ID, nil
}

func (f *fakeRegistrationRepository) FindRegistrations(ctx context.Context, limit int) ([]models.Registration, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []models.Registration
	for i := len(f.stored) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, f.stored[i])
	}
	return result, nil
}

func (f *fakeRegistrationRepository) FindByID(ctx context.Context, registrationID string) (*models.Registration, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.stored {
		if f.stored[i].ID == registrationID {
			registration := f.stored[i]
			return &registration, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistrationRepository) UpdateStatus(ctx context.Context, registrationID, status string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i := range f.stored {
		if f.stored[i].ID == registrationID {
			f.stored[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

func submitRequest() *requests.CreateRegistration {
	return &requests.CreateRegistration{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "12345678",
		Department: "Cardiology",
	}
}

func TestSubmit(t *testing.T) {
	t.Run("Returns Identifier And Stores Pending", func(t *testing.T) {
		repo := &fakeRegistrationRepository{}
		usecase := NewRegistrationUsecase(repo)

		result, err := usecase.Submit(context.Background(), submitRequest())
		assert.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, constvars.RegistrationCreatedSuccess, result.Message)

		fetched, err := usecase.GetByID(context.Background(), result.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", fetched.FullName)
		assert.Equal(t, "Cardiology", fetched.Department)
		assert.Equal(t, constvars.RegistrationStatusPending, fetched.Status)
		assert.Nil(t, fetched.PreferredDate)
		assert.WithinDuration(t, time.Now().UTC(), fetched.CreatedAt, 5*time.Second)
	})

	t.Run("Store Failure Propagates", func(t *testing.T) {
		repo := &fakeRegistrationRepository{err: exceptions.ErrStoreNotConnected(nil)}
		usecase := NewRegistrationUsecase(repo)

		_, err := usecase.Submit(context.Background(), submitRequest())
		assert.Error(t, err)
	})
}

func TestListPublic(t *testing.T) {
	t.Run("Empty Store Yields Empty Slice", func(t *testing.T) {
		usecase := NewRegistrationUsecase(&fakeRegistrationRepository{})

		result, err := usecase.ListPublic(context.Background(), 20)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result, 0)
	})

	t.Run("Most Recent First And Limited", func(t *testing.T) {
		repo := &fakeRegistrationRepository{}
		usecase := NewRegistrationUsecase(repo)

		for _, name := range []string{"Jane Doe", "John Roe", "Mary Major"} {
			request := submitRequest()
			request.FullName = name
			_, err := usecase.Submit(context.Background(), request)
			assert.NoError(t, err)
		}

		result, err := usecase.ListPublic(context.Background(), 2)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Mary Major", result[0].FullName)
		assert.Equal(t, "John Roe", result[1].FullName)
	})

	t.Run("Projection Matches Submitted Scenario", func(t *testing.T) {
		repo := &fakeRegistrationRepository{}
		usecase := NewRegistrationUsecase(repo)

		_, err := usecase.Submit(context.Background(), submitRequest())
		assert.NoError(t, err)

		result, err := usecase.ListPublic(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "Jane Doe", result[0].FullName)
		assert.Equal(t, "Cardiology", result[0].Department)
		assert.Equal(t, constvars.RegistrationStatusPending, result[0].Status)
		assert.Nil(t, result[0].PreferredDate)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("Unknown Identifier Is Not Found", func(t *testing.T) {
		usecase := NewRegistrationUsecase(&fakeRegistrationRepository{})

		_, err := usecase.GetByID(context.Background(), "66f000000000000000000099")
		assert.Error(t, err)

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customError.StatusCode)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("Confirm Then Read Back", func(t *testing.T) {
		repo := &fakeRegistrationRepository{}
		usecase := NewRegistrationUsecase(repo)

		created, err := usecase.Submit(context.Background(), submitRequest())
		assert.NoError(t, err)

		err = usecase.UpdateStatus(context.Background(), created.ID, constvars.RegistrationStatusConfirmed)
		assert.NoError(t, err)

		fetched, err := usecase.GetByID(context.Background(), created.ID)
		assert.NoError(t, err)
		assert.Equal(t, constvars.RegistrationStatusConfirmed, fetched.Status)
		// Only the status moved.
		assert.Equal(t, "Jane Doe", fetched.FullName)
		assert.Equal(t, "Cardiology", fetched.Department)
	})

	t.Run("Cancelled Is Not Terminal", func(t *testing.T) {
		repo := &fakeRegistrationRepository{}
		usecase := NewRegistrationUsecase(repo)

		created, err := usecase.Submit(context.Background(), submitRequest())
		assert.NoError(t, err)

		assert.NoError(t, usecase.UpdateStatus(context.Background(), created.ID, constvars.RegistrationStatusCancelled))
		assert.NoError(t, usecase.UpdateStatus(context.Background(), created.ID, constvars.RegistrationStatusConfirmed))

		fetched, err := usecase.GetByID(context.Background(), created.ID)
		assert.NoError(t, err)
		assert.Equal(t, constvars.RegistrationStatusConfirmed, fetched.Status)
	})

	t.Run("Unknown Identifier Creates Nothing", func(t *testing.T) {
		repo := &fakeRegistrationRepository{}
		usecase := NewRegistrationUsecase(repo)

		err := usecase.UpdateStatus(context.Background(), "66f000000000000000000099", constvars.RegistrationStatusConfirmed)
		assert.Error(t, err)

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customError.StatusCode)
		assert.Empty(t, repo.stored)
	})
}
