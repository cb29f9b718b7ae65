package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// fakeDoctorRepo keeps doctors in a map and assigns sequential IDs.
type fakeDoctorRepo struct {
	doctors map[int]*entity.Doctor
	nextID  int
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[int]*entity.Doctor), nextID: 1}
}

func (r *fakeDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	doctor.ID = r.nextID
	r.nextID++
	stored := *doctor
	r.doctors[doctor.ID] = &stored
	return nil
}

func (r *fakeDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	out := make([]entity.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDoctorRepo) FindByID(_ context.Context, id int) (*entity.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDoctorRepo) Update(_ context.Context, doctor *entity.Doctor) error {
	stored := *doctor
	r.doctors[doctor.ID] = &stored
	return nil
}

func (r *fakeDoctorRepo) Delete(_ context.Context, id int) error {
	delete(r.doctors, id)
	return nil
}

// fakeFileStore records saves without touching the disk.
type fakeFileStore struct {
	saved   map[string][]byte
	saveErr error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saved: make(map[string][]byte)}
}

func (s *fakeFileStore) Save(content []byte, originalName, subfolder string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	name := "generated_" + originalName
	s.saved[subfolder+"/"+name] = content
	return name, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(&strings.Builder{})
	return log
}

func TestDoctorCreateAndGet(t *testing.T) {
	repo := newFakeDoctorRepo()
	store := newFakeFileStore()
	uc := NewDoctorUsecase(testLogger(), repo, store)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateDoctorRequest{
		Name:           "Dr. Diallo",
		Specialization: "Cardiology",
		Phone:          "+22670000000",
		Email:          "diallo@hospital.test",
	}, &dto.FileUpload{OriginalName: "portrait.png", Content: []byte("img")})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned ID")
	}
	if created.Photo != "uploads/doctors/generated_portrait.png" {
		t.Errorf("unexpected photo path %q", created.Photo)
	}

	got, err := uc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Dr. Diallo" || got.Specialization != "Cardiology" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestDoctorCreateWithoutPhoto(t *testing.T) {
	repo := newFakeDoctorRepo()
	store := newFakeFileStore()
	uc := NewDoctorUsecase(testLogger(), repo, store)

	created, err := uc.Create(context.Background(), &dto.CreateDoctorRequest{
		Name:           "Dr. Ouedraogo",
		Specialization: "Pediatrics",
		Phone:          "+22670000001",
		Email:          "ouedraogo@hospital.test",
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Photo != "" {
		t.Errorf("expected empty photo, got %q", created.Photo)
	}
	if len(store.saved) != 0 {
		t.Errorf("expected no file saved, got %d", len(store.saved))
	}
}

func TestDoctorCreatePhotoSaveFailure(t *testing.T) {
	repo := newFakeDoctorRepo()
	store := newFakeFileStore()
	store.saveErr = errors.New("disk full")
	uc := NewDoctorUsecase(testLogger(), repo, store)

	_, err := uc.Create(context.Background(), &dto.CreateDoctorRequest{
		Name:           "Dr. Kabore",
		Specialization: "Surgery",
		Phone:          "+22670000002",
		Email:          "kabore@hospital.test",
	}, &dto.FileUpload{OriginalName: "x.png", Content: []byte("img")})
	if err == nil {
		t.Fatal("expected error from photo save")
	}
	if len(repo.doctors) != 0 {
		t.Error("expected no doctor persisted when photo save fails")
	}
}

func TestDoctorUpdatePartial(t *testing.T) {
	repo := newFakeDoctorRepo()
	uc := NewDoctorUsecase(testLogger(), repo, newFakeFileStore())
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateDoctorRequest{
		Name:           "Dr. Sawadogo",
		Specialization: "Dermatology",
		Phone:          "+22670000003",
		Email:          "sawadogo@hospital.test",
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// empty patch keeps everything
	unchanged, err := uc.Update(ctx, created.ID, &dto.UpdateDoctorRequest{}, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if unchanged.Name != created.Name || unchanged.Email != created.Email {
		t.Errorf("empty patch changed the doctor: %+v", unchanged)
	}

	newEmail := "updated@hospital.test"
	updated, err := uc.Update(ctx, created.ID, &dto.UpdateDoctorRequest{Email: &newEmail}, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Email != newEmail {
		t.Errorf("expected email %q, got %q", newEmail, updated.Email)
	}
	if updated.Name != created.Name {
		t.Errorf("name should be untouched, got %q", updated.Name)
	}
}

func TestDoctorDeleteThenGet(t *testing.T) {
	repo := newFakeDoctorRepo()
	uc := NewDoctorUsecase(testLogger(), repo, newFakeFileStore())
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateDoctorRequest{
		Name:           "Dr. Zongo",
		Specialization: "Neurology",
		Phone:          "+22670000004",
		Email:          "zongo@hospital.test",
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := uc.GetByID(ctx, created.ID); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}

	if err := uc.Delete(ctx, created.ID); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound on second delete, got %v", err)
	}
}
