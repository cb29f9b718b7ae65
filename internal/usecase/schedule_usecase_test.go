package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
)

type fakeScheduleRepo struct {
	schedules map[int]*entity.Schedule
	nextID    int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[int]*entity.Schedule), nextID: 1}
}

func (r *fakeScheduleRepo) Create(_ context.Context, schedule *entity.Schedule) error {
	schedule.ID = r.nextID
	r.nextID++
	stored := *schedule
	r.schedules[schedule.ID] = &stored
	return nil
}

func (r *fakeScheduleRepo) FindAll(_ context.Context) ([]entity.Schedule, error) {
	out := make([]entity.Schedule, 0, len(r.schedules))
	for _, s := range r.schedules {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeScheduleRepo) FindByID(_ context.Context, id int) (*entity.Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeScheduleRepo) FindByDoctorID(_ context.Context, doctorID int) ([]entity.Schedule, error) {
	var out []entity.Schedule
	for _, s := range r.schedules {
		if s.DoctorID == doctorID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) FindAvailable(_ context.Context, doctorID int, day time.Time) ([]entity.Schedule, error) {
	var out []entity.Schedule
	for _, s := range r.schedules {
		if s.DoctorID == doctorID && s.Day.Equal(day) && s.IsAvailable {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) FindOverlapping(_ context.Context, doctorID int, day time.Time, startTime, endTime string, excludeID int) ([]entity.Schedule, error) {
	var out []entity.Schedule
	for _, s := range r.schedules {
		if s.ID == excludeID || s.DoctorID != doctorID || !s.Day.Equal(day) {
			continue
		}
		if s.StartTime < endTime && s.EndTime > startTime {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, schedule *entity.Schedule) error {
	stored := *schedule
	r.schedules[schedule.ID] = &stored
	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id int) error {
	delete(r.schedules, id)
	return nil
}

// fakeSlotCache counts operations and can be preloaded with a hit.
type fakeSlotCache struct {
	entries     map[string][]entity.Schedule
	gets        int
	sets        int
	invalidates int
}

func newFakeSlotCache() *fakeSlotCache {
	return &fakeSlotCache{entries: make(map[string][]entity.Schedule)}
}

func slotKey(doctorID int, day time.Time) string {
	return fmt.Sprintf("%d#%s", doctorID, day.Format("2006-01-02"))
}

func (c *fakeSlotCache) Get(_ context.Context, doctorID int, day time.Time) ([]entity.Schedule, bool, error) {
	c.gets++
	schedules, ok := c.entries[slotKey(doctorID, day)]
	return schedules, ok, nil
}

func (c *fakeSlotCache) Set(_ context.Context, doctorID int, day time.Time, schedules []entity.Schedule) error {
	c.sets++
	c.entries[slotKey(doctorID, day)] = schedules
	return nil
}

func (c *fakeSlotCache) Invalidate(_ context.Context, doctorID int, day time.Time) error {
	c.invalidates++
	delete(c.entries, slotKey(doctorID, day))
	return nil
}

func newScheduleFixture(t *testing.T) (ScheduleUsecase, *fakeScheduleRepo, *fakeDoctorRepo, *fakeSlotCache) {
	t.Helper()
	scheduleRepo := newFakeScheduleRepo()
	doctorRepo := newFakeDoctorRepo()
	slotCache := newFakeSlotCache()
	uc := NewScheduleUsecase(testLogger(), scheduleRepo, doctorRepo, slotCache)

	if err := doctorRepo.Create(context.Background(), &entity.Doctor{
		Name:           "Dr. Traore",
		Specialization: "Cardiology",
	}); err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return uc, scheduleRepo, doctorRepo, slotCache
}

func TestScheduleCreateValidation(t *testing.T) {
	uc, _, _, _ := newScheduleFixture(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		req      dto.CreateScheduleRequest
		expected error
	}{
		{
			name:     "unknown doctor",
			req:      dto.CreateScheduleRequest{DoctorID: 99, Day: "2026-09-10", StartTime: "09:00", EndTime: "10:00"},
			expected: ErrDoctorNotFound,
		},
		{
			name:     "bad day format",
			req:      dto.CreateScheduleRequest{DoctorID: 1, Day: "10/09/2026", StartTime: "09:00", EndTime: "10:00"},
			expected: ErrInvalidScheduleDay,
		},
		{
			name:     "bad start time",
			req:      dto.CreateScheduleRequest{DoctorID: 1, Day: "2026-09-10", StartTime: "9am", EndTime: "10:00"},
			expected: ErrInvalidTimeFormat,
		},
		{
			name:     "end before start",
			req:      dto.CreateScheduleRequest{DoctorID: 1, Day: "2026-09-10", StartTime: "10:00", EndTime: "09:00"},
			expected: ErrInvalidTimeRange,
		},
		{
			name:     "zero-length slot",
			req:      dto.CreateScheduleRequest{DoctorID: 1, Day: "2026-09-10", StartTime: "10:00", EndTime: "10:00"},
			expected: ErrInvalidTimeRange,
		},
	}

	for _, c := range cases {
		_, err := uc.Create(ctx, &c.req)
		if !errors.Is(err, c.expected) {
			t.Errorf("%s: expected %v, got %v", c.name, c.expected, err)
		}
	}
}

func TestScheduleCreateRejectsOverlap(t *testing.T) {
	uc, _, _, _ := newScheduleFixture(t)
	ctx := context.Background()

	if _, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "09:00", EndTime: "11:00",
	}); err != nil {
		t.Fatalf("first slot: %v", err)
	}

	overlapping := []dto.CreateScheduleRequest{
		{DoctorID: 1, Day: "2026-09-10", StartTime: "10:00", EndTime: "12:00"},
		{DoctorID: 1, Day: "2026-09-10", StartTime: "08:00", EndTime: "09:30"},
		{DoctorID: 1, Day: "2026-09-10", StartTime: "09:30", EndTime: "10:30"},
	}
	for _, req := range overlapping {
		if _, err := uc.Create(ctx, &req); !errors.Is(err, ErrScheduleOverlap) {
			t.Errorf("%s-%s: expected ErrScheduleOverlap, got %v", req.StartTime, req.EndTime, err)
		}
	}

	// adjacent slot is allowed, ranges are half-open
	if _, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "11:00", EndTime: "12:00",
	}); err != nil {
		t.Errorf("adjacent slot rejected: %v", err)
	}

	// same times on another day are fine
	if _, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-11", StartTime: "09:00", EndTime: "11:00",
	}); err != nil {
		t.Errorf("different day rejected: %v", err)
	}
}

func TestScheduleCreateNormalizesTimes(t *testing.T) {
	uc, _, _, _ := newScheduleFixture(t)

	created, err := uc.Create(context.Background(), &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "9:00", EndTime: "9:30",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.StartTime != "09:00" || created.EndTime != "09:30" {
		t.Errorf("expected zero-padded times, got %s-%s", created.StartTime, created.EndTime)
	}
	if !created.IsAvailable {
		t.Error("expected availability to default to true")
	}
}

func TestAvailableSlotsUsesCache(t *testing.T) {
	uc, _, _, slotCache := newScheduleFixture(t)
	ctx := context.Background()

	if _, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "09:00", EndTime: "10:00",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	unavailable := false
	if _, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "10:00", EndTime: "11:00", IsAvailable: &unavailable,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	first, err := uc.GetAvailableSlots(ctx, 1, "2026-09-10")
	if err != nil {
		t.Fatalf("GetAvailableSlots failed: %v", err)
	}
	if first.Total != 1 {
		t.Fatalf("expected 1 available slot, got %d", first.Total)
	}
	if slotCache.sets != 1 {
		t.Errorf("expected 1 cache write, got %d", slotCache.sets)
	}

	second, err := uc.GetAvailableSlots(ctx, 1, "2026-09-10")
	if err != nil {
		t.Fatalf("GetAvailableSlots failed: %v", err)
	}
	if second.Total != first.Total {
		t.Errorf("cache hit diverged: %d vs %d", second.Total, first.Total)
	}
	if slotCache.sets != 1 {
		t.Errorf("cache hit should not rewrite, sets = %d", slotCache.sets)
	}

	if _, err := uc.GetAvailableSlots(ctx, 1, "not-a-date"); !errors.Is(err, ErrInvalidScheduleDay) {
		t.Errorf("expected ErrInvalidScheduleDay, got %v", err)
	}
}

func TestScheduleUpdateInvalidatesCache(t *testing.T) {
	uc, _, _, slotCache := newScheduleFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "09:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := uc.GetAvailableSlots(ctx, 1, "2026-09-10"); err != nil {
		t.Fatalf("GetAvailableSlots failed: %v", err)
	}

	newDay := "2026-09-12"
	updated, err := uc.Update(ctx, created.ID, &dto.UpdateScheduleRequest{Day: &newDay})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Day != newDay {
		t.Errorf("expected day %s, got %s", newDay, updated.Day)
	}
	// both the old and the new day are invalidated
	if slotCache.invalidates < 3 {
		t.Errorf("expected invalidations for create, old day and new day, got %d", slotCache.invalidates)
	}

	after, err := uc.GetAvailableSlots(ctx, 1, "2026-09-10")
	if err != nil {
		t.Fatalf("GetAvailableSlots failed: %v", err)
	}
	if after.Total != 0 {
		t.Errorf("slot moved away, expected 0 available, got %d", after.Total)
	}
}

func TestScheduleUpdateRejectsOverlapWithOthersOnly(t *testing.T) {
	uc, _, _, _ := newScheduleFixture(t)
	ctx := context.Background()

	first, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "09:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "10:00", EndTime: "11:00",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// shrinking inside its own range is fine, the slot does not conflict with itself
	newEnd := "09:30"
	if _, err := uc.Update(ctx, first.ID, &dto.UpdateScheduleRequest{EndTime: &newEnd}); err != nil {
		t.Errorf("self-contained update rejected: %v", err)
	}

	// stretching into the neighbour is not
	intoNeighbour := "10:30"
	if _, err := uc.Update(ctx, first.ID, &dto.UpdateScheduleRequest{EndTime: &intoNeighbour}); !errors.Is(err, ErrScheduleOverlap) {
		t.Errorf("expected ErrScheduleOverlap, got %v", err)
	}
}

func TestScheduleUpdateNormalizesTimes(t *testing.T) {
	uc, _, _, _ := newScheduleFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "08:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// a single-digit hour must pad to 09:00, not fail the range check
	newStart := "9:00"
	updated, err := uc.Update(ctx, created.ID, &dto.UpdateScheduleRequest{StartTime: &newStart})
	if err != nil {
		t.Fatalf("Update with unpadded start failed: %v", err)
	}
	if updated.StartTime != "09:00" {
		t.Errorf("expected padded start 09:00, got %q", updated.StartTime)
	}

	start, end := "9:00", "9:30"
	updated, err = uc.Update(ctx, created.ID, &dto.UpdateScheduleRequest{StartTime: &start, EndTime: &end})
	if err != nil {
		t.Fatalf("Update with unpadded range failed: %v", err)
	}
	if updated.StartTime != "09:00" || updated.EndTime != "09:30" {
		t.Errorf("expected padded 09:00-09:30, got %s-%s", updated.StartTime, updated.EndTime)
	}

	// stored values stay comparable: a later non-overlapping slot is accepted
	if _, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "10:00", EndTime: "11:00",
	}); err != nil {
		t.Errorf("slot after normalized update rejected: %v", err)
	}
}

func TestScheduleDelete(t *testing.T) {
	uc, _, _, _ := newScheduleFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateScheduleRequest{
		DoctorID: 1, Day: "2026-09-10", StartTime: "09:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := uc.GetByID(ctx, created.ID); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, created.ID); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound on second delete, got %v", err)
	}
}
