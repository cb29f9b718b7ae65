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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	age, err := strconv.Atoi(r.FormValue("age"))
	if err != nil {
		response.BadRequest(w, "Invalid age")
		return
	}

	req := dto.CreatePatientRequest{
		Name:  r.FormValue("name"),
		Age:   &age,
		Email: r.FormValue("email"),
		Phone: r.FormValue("phone"),
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

	patient, err := h.patientUsecase.Create(r.Context(), &req, photo)
	if err != nil {
		response.InternalServerError(w, "Failed to create patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, patientNotFoundMessage(id))
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.UpdatePatientRequest{
		Name:  formValue(r, "name"),
		Email: formValue(r, "email"),
		Phone: formValue(r, "phone"),
	}
	if raw := formValue(r, "age"); raw != nil {
		age, err := strconv.Atoi(*raw)
		if err != nil {
			response.BadRequest(w, "Invalid age")
			return
		}
		req.Age = &age
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

	patient, err := h.patientUsecase.Update(r.Context(), id, &req, photo)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, patientNotFoundMessage(id))
			return
		}
		response.InternalServerError(w, "Failed to update patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, patientNotFoundMessage(id))
			return
		}
		response.InternalServerError(w, "Failed to delete patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

func patientNotFoundMessage(id int) string {
	return "Patient with ID " + strconv.Itoa(id) + " not found"
}
