package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/validator"

	"github.com/gorilla/mux"
)

type fakeAppointmentUsecase struct {
	createErr  error
	updateErr  error
	lastStatus string
	lastID     int
}

func (f *fakeAppointmentUsecase) Create(_ context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	statut := req.Statut
	if statut == "" {
		statut = "planned"
	}
	return &dto.AppointmentResponse{ID: 1, Heure: req.Heure, Type: req.Type, Statut: statut}, nil
}

func (f *fakeAppointmentUsecase) GetAll(_ context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}, Total: 0}, nil
}

func (f *fakeAppointmentUsecase) GetByID(_ context.Context, id int) (*dto.AppointmentResponse, error) {
	return &dto.AppointmentResponse{ID: id}, nil
}

func (f *fakeAppointmentUsecase) UpdateStatus(_ context.Context, id int, status string) (*dto.AppointmentResponse, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastID = id
	f.lastStatus = status
	return &dto.AppointmentResponse{ID: id, Statut: status}, nil
}

func (f *fakeAppointmentUsecase) Delete(_ context.Context, _ int) error {
	return nil
}

func TestAppointmentCreateMissingDoctorMessage(t *testing.T) {
	fake := &fakeAppointmentUsecase{createErr: usecase.ErrDoctorNotFound}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	body := `{"heure":"2026-09-10T14:30:00Z","type":"consultation","id_doctor":42,"id_patient":1}`
	req := httptest.NewRequest(http.MethodPost, "/appointment", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "Doctor with ID 42 not found" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestAppointmentCreateMissingPatientMessage(t *testing.T) {
	fake := &fakeAppointmentUsecase{createErr: usecase.ErrPatientNotFound}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	body := `{"heure":"2026-09-10T14:30:00Z","type":"consultation","id_doctor":1,"id_patient":77}`
	req := httptest.NewRequest(http.MethodPost, "/appointment", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "Patient with ID 77 not found" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestAppointmentCreateSuccess(t *testing.T) {
	h := NewAppointmentHandler(&fakeAppointmentUsecase{}, validator.NewValidator())

	body := `{"heure":"2026-09-10T14:30:00Z","type":"consultation","id_doctor":1,"id_patient":1}`
	req := httptest.NewRequest(http.MethodPost, "/appointment", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected object data, got %T", resp.Data)
	}
	if data["statut"] != "planned" {
		t.Errorf("expected default statut planned, got %v", data["statut"])
	}
	wantHeure := time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC).Format(time.RFC3339)
	if data["heure"] != wantHeure {
		t.Errorf("expected heure %s, got %v", wantHeure, data["heure"])
	}
}

func TestAppointmentCreateInvalidBody(t *testing.T) {
	h := NewAppointmentHandler(&fakeAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/appointment", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAppointmentUpdateStatutFromPath(t *testing.T) {
	fake := &fakeAppointmentUsecase{}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPut, "/appointment/5/statut/cancelled", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5", "statut": "cancelled"})
	rec := httptest.NewRecorder()

	h.UpdateStatut(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if fake.lastID != 5 || fake.lastStatus != "cancelled" {
		t.Errorf("expected id=5 statut=cancelled, got id=%d statut=%q", fake.lastID, fake.lastStatus)
	}
}

func TestAppointmentUpdateStatutNotFound(t *testing.T) {
	fake := &fakeAppointmentUsecase{updateErr: usecase.ErrAppointmentNotFound}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPut, "/appointment/9/statut/cancelled", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "9", "statut": "cancelled"})
	rec := httptest.NewRecorder()

	h.UpdateStatut(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "Appointment with ID 9 not found" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}
