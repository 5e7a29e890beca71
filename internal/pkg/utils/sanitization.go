package utils

import (
	"hospital-portal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateRegistrationRequest(input *requests.CreateRegistration) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.Address = strings.TrimSpace(input.Address)
	input.Department = strings.TrimSpace(input.Department)
	input.PreferredDate = strings.TrimSpace(input.PreferredDate)
	input.Symptoms = strings.TrimSpace(input.Symptoms)
}

func SanitizeUpdateRegistrationStatusRequest(input *requests.UpdateRegistrationStatus) {
	input.Status = strings.TrimSpace(strings.ToLower(input.Status))
}
