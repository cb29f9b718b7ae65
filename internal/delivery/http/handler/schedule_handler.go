package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/response"
	"hospital-admin-api/pkg/validator"

	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeScheduleError(w, err, req.DoctorID)
		return
	}

	response.Success(w, http.StatusCreated, "Schedule created successfully", schedule)
}

func (h *ScheduleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.scheduleUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID")
		return
	}

	schedule, err := h.scheduleUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrScheduleNotFound) {
			response.NotFound(w, "Schedule with ID "+strconv.Itoa(id)+" not found")
			return
		}
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *ScheduleHandler) GetByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["doctorId"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	schedules, err := h.scheduleUsecase.GetByDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *ScheduleHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["doctorId"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required")
		return
	}

	schedules, err := h.scheduleUsecase.GetAvailableSlots(r.Context(), doctorID, date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidScheduleDay) {
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
			return
		}
		response.InternalServerError(w, "Failed to get available slots")
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", schedules)
}

func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID")
		return
	}

	var req dto.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrScheduleNotFound) {
			response.NotFound(w, "Schedule with ID "+strconv.Itoa(id)+" not found")
			return
		}
		h.writeScheduleError(w, err, 0)
		return
	}

	response.Success(w, http.StatusOK, "Schedule updated successfully", schedule)
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID")
		return
	}

	if err := h.scheduleUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrScheduleNotFound) {
			response.NotFound(w, "Schedule with ID "+strconv.Itoa(id)+" not found")
			return
		}
		response.InternalServerError(w, "Failed to delete schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule deleted successfully", nil)
}

func (h *ScheduleHandler) writeScheduleError(w http.ResponseWriter, err error, doctorID int) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, doctorNotFoundMessage(doctorID))
	case errors.Is(err, usecase.ErrInvalidScheduleDay):
		response.BadRequest(w, "Invalid day format, use YYYY-MM-DD")
	case errors.Is(err, usecase.ErrInvalidTimeFormat):
		response.BadRequest(w, "Invalid time format, use HH:MM")
	case errors.Is(err, usecase.ErrInvalidTimeRange):
		response.BadRequest(w, "End time must be after start time")
	case errors.Is(err, usecase.ErrScheduleOverlap):
		response.Error(w, http.StatusConflict, "Schedule overlaps an existing slot for this doctor", nil)
	default:
		response.InternalServerError(w, "Failed to save schedule")
	}
}
