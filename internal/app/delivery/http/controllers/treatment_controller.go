package controllers

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TreatmentController struct {
	Log              *zap.Logger
	TreatmentUsecase contracts.TreatmentUsecase
}

func NewTreatmentController(logger *zap.Logger, treatmentUsecase contracts.TreatmentUsecase) *TreatmentController {
	return &TreatmentController{
		Log:              logger,
		TreatmentUsecase: treatmentUsecase,
	}
}

func (ctrl *TreatmentController) FindAllNames(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TreatmentUsecase.FindAllNames(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTreatmentsSuccessMessage, result)
}

// FindAvailable compares the date query verbatim with stored booking dates.
func (ctrl *TreatmentController) FindAvailable(w http.ResponseWriter, r *http.Request) {
	request := &requests.FindAvailability{
		Date: r.URL.Query().Get(constvars.QueryParamDate),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TreatmentUsecase.FindAvailable(ctx, request.Date)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, result)
}

func (ctrl *TreatmentController) UpsertTreatment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpsertTreatment)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpsertTreatmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TreatmentUsecase.UpsertTreatment(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertTreatmentSuccessMessage, result)
}
