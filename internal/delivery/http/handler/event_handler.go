package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/response"
	"hospital-admin-api/pkg/validator"

	"github.com/gorilla/mux"
)

type EventHandler struct {
	eventUsecase usecase.EventUsecase
	validator    *validator.CustomValidator
}

func NewEventHandler(eventUsecase usecase.EventUsecase, validator *validator.CustomValidator) *EventHandler {
	return &EventHandler{
		eventUsecase: eventUsecase,
		validator:    validator,
	}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.CreateEventRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Date:        r.FormValue("date"),
		Location:    r.FormValue("location"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	photo, err := readPhotoUpload(r, "photo", true)
	if err != nil {
		if errors.Is(err, errPhotoRequired) || errors.Is(err, errPhotoExtension) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to read uploaded photo")
		return
	}

	event, err := h.eventUsecase.Create(r.Context(), &req, photo)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEventDate) {
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
			return
		}
		response.InternalServerError(w, "Failed to create event")
		return
	}

	response.Success(w, http.StatusCreated, "Event created successfully", event)
}

func (h *EventHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get events")
		return
	}

	response.Success(w, http.StatusOK, "Events retrieved successfully", events)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	event, err := h.eventUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrEventNotFound) {
			response.NotFound(w, eventNotFoundMessage(id))
			return
		}
		response.InternalServerError(w, "Failed to get event")
		return
	}

	response.Success(w, http.StatusOK, "Event retrieved successfully", event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.UpdateEventRequest{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
		Date:        formValue(r, "date"),
		Location:    formValue(r, "location"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	photo, err := readPhotoUpload(r, "photo", false)
	if err != nil {
		if errors.Is(err, errPhotoExtension) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to read uploaded photo")
		return
	}

	event, err := h.eventUsecase.Update(r.Context(), id, &req, photo)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEventNotFound):
			response.NotFound(w, eventNotFoundMessage(id))
		case errors.Is(err, usecase.ErrInvalidEventDate):
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to update event")
		}
		return
	}

	response.Success(w, http.StatusOK, "Event updated successfully", event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	if err := h.eventUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrEventNotFound) {
			response.NotFound(w, eventNotFoundMessage(id))
			return
		}
		response.InternalServerError(w, "Failed to delete event")
		return
	}

	response.Success(w, http.StatusOK, "Event deleted successfully", nil)
}

func eventNotFoundMessage(id int) string {
	return "Event with ID " + strconv.Itoa(id) + " not found"
}
