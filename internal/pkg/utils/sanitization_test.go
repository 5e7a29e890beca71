package utils

import (
	"hospital-portal-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateRegistrationRequest(t *testing.T) {
	t.Run("Email Lowercased And Trimmed", func(t *testing.T) {
		request := &requests.CreateRegistration{
			Email: "  JANE@EXAMPLE.COM  ",
		}

		SanitizeCreateRegistrationRequest(request)

		assert.Equal(t, "jane@example.com", request.Email)
	})

	t.Run("Whitespace Stripped Everywhere", func(t *testing.T) {
		request := &requests.CreateRegistration{
			FullName:      "  Jane Doe  ",
			Phone:         " 12345678 ",
			Department:    "  Cardiology ",
			PreferredDate: " 2026-10-01 ",
			Symptoms:      "  chest pain  ",
		}

		SanitizeCreateRegistrationRequest(request)

		assert.Equal(t, "Jane Doe", request.FullName)
		assert.Equal(t, "12345678", request.Phone)
		assert.Equal(t, "Cardiology", request.Department)
		assert.Equal(t, "2026-10-01", request.PreferredDate)
		assert.Equal(t, "chest pain", request.Symptoms)
	})

	t.Run("Gender Lowercased", func(t *testing.T) {
		request := &requests.CreateRegistration{Gender: " Female "}

		SanitizeCreateRegistrationRequest(request)

		assert.Equal(t, "female", request.Gender)
	})
}

func TestSanitizeUpdateRegistrationStatusRequest(t *testing.T) {
	request := &requests.UpdateRegistrationStatus{Status: "  Confirmed "}

	SanitizeUpdateRegistrationStatusRequest(request)

	assert.Equal(t, "confirmed", request.Status)
}
