package registrations

import (
	"context"
	"encoding/json"
	"hospital-portal-service/internal/app/config"
	"hospital-portal-service/internal/pkg/constvars"
	"hospital-portal-service/internal/pkg/dto/requests"
	"hospital-portal-service/internal/pkg/exceptions"
	"hospital-portal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RegistrationController struct {
	Log                 *zap.Logger
	RegistrationUsecase RegistrationUsecase
	InternalConfig      *config.InternalConfig
}

func NewRegistrationController(logger *zap.Logger, registrationUsecase RegistrationUsecase, internalConfig *config.InternalConfig) *RegistrationController {
	return &RegistrationController{
		Log:                 logger,
		RegistrationUsecase: registrationUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *RegistrationController) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateRegistration)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateRegistrationRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RegistrationUsecase.Submit(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegistrationCreatedSuccess, result)
}

func (ctrl *RegistrationController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	request := utils.BuildListRegistrationsRequest(r, ctrl.InternalConfig.App.PublicListLimit, ctrl.InternalConfig.App.MaxListLimit)
	ctrl.listRegistrations(w, r, request.Limit)
}

func (ctrl *RegistrationController) AdminListRegistrations(w http.ResponseWriter, r *http.Request) {
	request := utils.BuildListRegistrationsRequest(r, ctrl.InternalConfig.App.AdminListLimit, ctrl.InternalConfig.App.MaxListLimit)
	ctrl.listRegistrations(w, r, request.Limit)
}

func (ctrl *RegistrationController) listRegistrations(w http.ResponseWriter, r *http.Request, limit int) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RegistrationUsecase.ListPublic(ctx, limit)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegistrationListSuccess, result)
}

func (ctrl *RegistrationController) AdminGetRegistration(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "registrationID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RegistrationUsecase.GetByID(ctx, registrationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegistrationGetSuccess, result)
}

func (ctrl *RegistrationController) AdminUpdateRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "registrationID")

	request := new(requests.UpdateRegistrationStatus)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateRegistrationStatusRequest(request)

	// Same enum as creation: the create/update asymmetry of the first cut
	// let arbitrary status strings through and is deliberately closed here.
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.RegistrationUsecase.UpdateStatus(ctx, registrationID, request.Status)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegistrationStatusUpdated, nil)
}
