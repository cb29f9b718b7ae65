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

type HistoriqueHandler struct {
	historiqueUsecase usecase.HistoriqueUsecase
	validator         *validator.CustomValidator
}

func NewHistoriqueHandler(historiqueUsecase usecase.HistoriqueUsecase, validator *validator.CustomValidator) *HistoriqueHandler {
	return &HistoriqueHandler{
		historiqueUsecase: historiqueUsecase,
		validator:         validator,
	}
}

func (h *HistoriqueHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.CreateHistoriqueRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
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

	historique, err := h.historiqueUsecase.Create(r.Context(), &req, photo)
	if err != nil {
		response.InternalServerError(w, "Failed to create historique")
		return
	}

	response.Success(w, http.StatusCreated, "Historique created successfully", historique)
}

func (h *HistoriqueHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	historiques, err := h.historiqueUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get historiques")
		return
	}

	response.Success(w, http.StatusOK, "Historiques retrieved successfully", historiques)
}

func (h *HistoriqueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid historique ID")
		return
	}

	historique, err := h.historiqueUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrHistoriqueNotFound) {
			response.NotFound(w, historiqueNotFoundMessage(id))
			return
		}
		response.InternalServerError(w, "Failed to get historique")
		return
	}

	response.Success(w, http.StatusOK, "Historique retrieved successfully", historique)
}

func (h *HistoriqueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid historique ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.UpdateHistoriqueRequest{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
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

	historique, err := h.historiqueUsecase.Update(r.Context(), id, &req, photo)
	if err != nil {
		if errors.Is(err, usecase.ErrHistoriqueNotFound) {
			response.NotFound(w, historiqueNotFoundMessage(id))
			return
		}
		response.InternalServerError(w, "Failed to update historique")
		return
	}

	response.Success(w, http.StatusOK, "Historique updated successfully", historique)
}

func (h *HistoriqueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid historique ID")
		return
	}

	if err := h.historiqueUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrHistoriqueNotFound) {
			response.NotFound(w, historiqueNotFoundMessage(id))
			return
		}
		response.InternalServerError(w, "Failed to delete historique")
		return
	}

	response.Success(w, http.StatusOK, "Historique deleted successfully", nil)
}

func historiqueNotFoundMessage(id int) string {
	return "Historique with ID " + strconv.Itoa(id) + " not found"
}
