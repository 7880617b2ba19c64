package refdata

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Artexxx/HR-Console/internal/dto"
)

// ErrDataUnavailable — справочники не загрузились; формы, которым нужны
// подписи кодов, должны блокировать создание записей до повторной загрузки.
var ErrDataUnavailable = errors.New("errReferenceDataUnavailable")

type Kind string

const (
	KindJob        Kind = "job"
	KindDepartment Kind = "department"
)

type Repository interface {
	ListJobs(ctx context.Context) ([]dto.Job, error)
	ListDepartments(ctx context.Context) ([]dto.Department, error)
}

// Cache — справочник должностей и подразделений на время сессии.
// Загружается один раз, после Load только читается, обратно не пишется.
type Cache struct {
	repo Repository

	mu          sync.RWMutex
	jobs        map[string]string
	departments map[string]string
	loaded      bool
}

func NewCache(repo Repository) *Cache {
	return &Cache{
		repo:        repo,
		jobs:        map[string]string{},
		departments: map[string]string{},
	}
}

// Load забирает оба справочника целиком. Отказ любого из двух запросов —
// отказ всей загрузки, частично заполненный кэш наружу не выходит.
func (c *Cache) Load(ctx context.Context) error {
	jobs, err := c.repo.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("%w: jobs: %v", ErrDataUnavailable, err)
	}

	departments, err := c.repo.ListDepartments(ctx)
	if err != nil {
		return fmt.Errorf("%w: departments: %v", ErrDataUnavailable, err)
	}

	jobsByCode := make(map[string]string, len(jobs))
	for _, j := range jobs {
		jobsByCode[j.JobCode] = j.JobTitle
	}

	departmentsByCode := make(map[string]string, len(departments))
	for _, d := range departments {
		departmentsByCode[d.DepartmentCode] = d.DepartmentName
	}

	c.mu.Lock()
	c.jobs = jobsByCode
	c.departments = departmentsByCode
	c.loaded = true
	c.mu.Unlock()

	return nil
}

// Describe возвращает человекочитаемую подпись кода. Промах по кэшу —
// не ошибка: показываем сам код.
func (c *Cache) Describe(kind Kind, code string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var label string
	var ok bool

	switch kind {
	case KindJob:
		label, ok = c.jobs[code]
	case KindDepartment:
		label, ok = c.departments[code]
	}

	if !ok {
		return code
	}

	return label
}

func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loaded
}

// Jobs отдаёт справочник должностей, отсортированный по коду.
func (c *Cache) Jobs() []dto.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]dto.Job, 0, len(c.jobs))
	for code, title := range c.jobs {
		out = append(out, dto.Job{JobCode: code, JobTitle: title})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].JobCode < out[j].JobCode })

	return out
}

// Departments отдаёт справочник подразделений, отсортированный по коду.
func (c *Cache) Departments() []dto.Department {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]dto.Department, 0, len(c.departments))
	for code, name := range c.departments {
		out = append(out, dto.Department{DepartmentCode: code, DepartmentName: name})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DepartmentCode < out[j].DepartmentCode })

	return out
}
