package refdata

import (
	"context"
	"errors"
	"testing"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type fakeRepository struct {
	jobs        []dto.Job
	departments []dto.Department

	jobsErr        error
	departmentsErr error
}

func (f *fakeRepository) ListJobs(_ context.Context) ([]dto.Job, error) {
	if f.jobsErr != nil {
		return nil, f.jobsErr
	}
	return f.jobs, nil
}

func (f *fakeRepository) ListDepartments(_ context.Context) ([]dto.Department, error) {
	if f.departmentsErr != nil {
		return nil, f.departmentsErr
	}
	return f.departments, nil
}

func loadedCache(t *testing.T) *Cache {
	t.Helper()

	cache := NewCache(&fakeRepository{
		jobs: []dto.Job{
			{JobCode: "SR_DEV", JobTitle: "Старший разработчик"},
			{JobCode: "DEV", JobTitle: "Разработчик"},
		},
		departments: []dto.Department{
			{DepartmentCode: "QA", DepartmentName: "Тестирование"},
			{DepartmentCode: "ENG", DepartmentName: "Разработка"},
		},
	})
	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return cache
}

func TestCache_Describe(t *testing.T) {
	t.Parallel()

	cache := loadedCache(t)

	if got := cache.Describe(KindJob, "DEV"); got != "Разработчик" {
		t.Fatalf("expected job title, got %q", got)
	}
	if got := cache.Describe(KindDepartment, "ENG"); got != "Разработка" {
		t.Fatalf("expected department name, got %q", got)
	}
}

func TestCache_DescribeFallsBackToCode(t *testing.T) {
	t.Parallel()

	cache := loadedCache(t)

	// Промах по кэшу не ломает отображение: наружу уходит сам код.
	if got := cache.Describe(KindJob, "UNKNOWN"); got != "UNKNOWN" {
		t.Fatalf("expected raw code for unknown job, got %q", got)
	}
	if got := cache.Describe(KindDepartment, "X"); got != "X" {
		t.Fatalf("expected raw code for unknown department, got %q", got)
	}
}

func TestCache_LoadAllOrNothing(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{
		jobs:           []dto.Job{{JobCode: "DEV", JobTitle: "Разработчик"}},
		departmentsErr: errors.New("connection refused"),
	}
	cache := NewCache(repo)

	err := cache.Load(context.Background())
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
	if cache.Loaded() {
		t.Fatalf("partial load must not mark the cache loaded")
	}

	// Справочники доехали — повторная загрузка чинит кэш.
	repo.departmentsErr = nil
	repo.departments = []dto.Department{{DepartmentCode: "ENG", DepartmentName: "Разработка"}}

	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("retry Load returned error: %v", err)
	}
	if !cache.Loaded() {
		t.Fatalf("cache must be loaded after successful retry")
	}
}

func TestCache_ListingsSortedByCode(t *testing.T) {
	t.Parallel()

	cache := loadedCache(t)

	jobs := cache.Jobs()
	if len(jobs) != 2 || jobs[0].JobCode != "DEV" || jobs[1].JobCode != "SR_DEV" {
		t.Fatalf("expected jobs sorted by code, got %+v", jobs)
	}

	departments := cache.Departments()
	if len(departments) != 2 || departments[0].DepartmentCode != "ENG" || departments[1].DepartmentCode != "QA" {
		t.Fatalf("expected departments sorted by code, got %+v", departments)
	}
}
