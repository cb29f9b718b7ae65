package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/response"
	"hospital-admin-api/pkg/validator"

	"github.com/gorilla/mux"
)

// fakeDoctorUsecase records calls and returns canned values.
type fakeDoctorUsecase struct {
	createCalls int
	lastPhoto   *dto.FileUpload
	getErr      error
}

func (f *fakeDoctorUsecase) Create(_ context.Context, req *dto.CreateDoctorRequest, photo *dto.FileUpload) (*dto.DoctorResponse, error) {
	f.createCalls++
	f.lastPhoto = photo
	resp := &dto.DoctorResponse{
		ID:             1,
		Name:           req.Name,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Email:          req.Email,
	}
	if photo != nil {
		resp.Photo = "uploads/doctors/1735689600000_fake.png"
	}
	return resp, nil
}

func (f *fakeDoctorUsecase) GetAll(_ context.Context) (*dto.DoctorListResponse, error) {
	return &dto.DoctorListResponse{Doctors: []dto.DoctorResponse{}, Total: 0}, nil
}

func (f *fakeDoctorUsecase) GetByID(_ context.Context, id int) (*dto.DoctorResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dto.DoctorResponse{ID: id, Name: "Dr. Some"}, nil
}

func (f *fakeDoctorUsecase) Update(_ context.Context, id int, _ *dto.UpdateDoctorRequest, _ *dto.FileUpload) (*dto.DoctorResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dto.DoctorResponse{ID: id}, nil
}

func (f *fakeDoctorUsecase) Delete(_ context.Context, _ int) error {
	return f.getErr
}

func multipartDoctorBody(t *testing.T, fields map[string]string, photoName string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if photoName != "" {
		part, err := writer.CreateFormFile("photo", photoName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write photo: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func validDoctorFields() map[string]string {
	return map[string]string{
		"name":           "Dr. Some",
		"specialization": "Cardiology",
		"phone":          "+22670000000",
		"email":          "some@hospital.test",
	}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestDoctorCreateAcceptsPng(t *testing.T) {
	fake := &fakeDoctorUsecase{}
	h := NewDoctorHandler(fake, validator.NewValidator())

	body, contentType := multipartDoctorBody(t, validDoctorFields(), "portrait.png")
	req := httptest.NewRequest(http.MethodPost, "/doctors", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if fake.createCalls != 1 {
		t.Fatalf("expected 1 usecase call, got %d", fake.createCalls)
	}
	if fake.lastPhoto == nil || fake.lastPhoto.OriginalName != "portrait.png" {
		t.Errorf("photo not forwarded: %+v", fake.lastPhoto)
	}
	if string(fake.lastPhoto.Content) != "fake image bytes" {
		t.Errorf("photo content mismatch: %q", fake.lastPhoto.Content)
	}
}

func TestDoctorCreateRejectsGifBeforeUsecase(t *testing.T) {
	fake := &fakeDoctorUsecase{}
	h := NewDoctorHandler(fake, validator.NewValidator())

	body, contentType := multipartDoctorBody(t, validDoctorFields(), "portrait.gif")
	req := httptest.NewRequest(http.MethodPost, "/doctors", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "Invalid file type. Allowed extensions are jpg, jpeg, png" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if fake.createCalls != 0 {
		t.Errorf("rejected upload must not reach the usecase, got %d calls", fake.createCalls)
	}
}

func TestDoctorCreateRequiresPhoto(t *testing.T) {
	fake := &fakeDoctorUsecase{}
	h := NewDoctorHandler(fake, validator.NewValidator())

	body, contentType := multipartDoctorBody(t, validDoctorFields(), "")
	req := httptest.NewRequest(http.MethodPost, "/doctors", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "Photo is required" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if fake.createCalls != 0 {
		t.Errorf("missing photo must not reach the usecase, got %d calls", fake.createCalls)
	}
}

func TestDoctorCreateValidationFailure(t *testing.T) {
	fake := &fakeDoctorUsecase{}
	h := NewDoctorHandler(fake, validator.NewValidator())

	fields := validDoctorFields()
	fields["email"] = "not-an-email"
	body, contentType := multipartDoctorBody(t, fields, "portrait.png")
	req := httptest.NewRequest(http.MethodPost, "/doctors", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "Validation failed" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if fake.createCalls != 0 {
		t.Errorf("invalid payload must not reach the usecase, got %d calls", fake.createCalls)
	}
}

func TestDoctorGetNotFound(t *testing.T) {
	fake := &fakeDoctorUsecase{getErr: usecase.ErrDoctorNotFound}
	h := NewDoctorHandler(fake, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/doctors/42", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "Doctor with ID 42 not found" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestDoctorGetInvalidID(t *testing.T) {
	h := NewDoctorHandler(&fakeDoctorUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/doctors/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
