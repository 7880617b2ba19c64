package refdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type PgxPoolIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository struct {
	pool PgxPoolIface
}

func NewRepository(pool PgxPoolIface) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) ListJobs(ctx context.Context) ([]dto.Job, error) {
	query := `
select job_code, job_title
from jobs
order by job_code
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.Job
	for rows.Next() {
		var j dto.Job

		if err := rows.Scan(&j.JobCode, &j.JobTitle); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}

func (r *Repository) ListDepartments(ctx context.Context) ([]dto.Department, error) {
	query := `
select department_code, department_name
from departments
order by department_code
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.Department
	for rows.Next() {
		var d dto.Department

		if err := rows.Scan(&d.DepartmentCode, &d.DepartmentName); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}

func (r *Repository) CreateJob(ctx context.Context, j dto.Job) error {
	query := `insert into jobs (job_code, job_title) values ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, j.JobCode, j.JobTitle); err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == "23505" {
			return dto.ErrAlreadyExists
		}

		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Repository) UpdateJob(ctx context.Context, j dto.Job) error {
	query := `update jobs set job_title = $2 where job_code = $1`

	tag, err := r.pool.Exec(ctx, query, j.JobCode, j.JobTitle)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteJob(ctx context.Context, jobCode string) error {
	query := `delete from jobs where job_code = $1`

	tag, err := r.pool.Exec(ctx, query, jobCode)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) CreateDepartment(ctx context.Context, d dto.Department) error {
	query := `insert into departments (department_code, department_name) values ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, d.DepartmentCode, d.DepartmentName); err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == "23505" {
			return dto.ErrAlreadyExists
		}

		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Repository) UpdateDepartment(ctx context.Context, d dto.Department) error {
	query := `update departments set department_name = $2 where department_code = $1`

	tag, err := r.pool.Exec(ctx, query, d.DepartmentCode, d.DepartmentName)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteDepartment(ctx context.Context, departmentCode string) error {
	query := `delete from departments where department_code = $1`

	tag, err := r.pool.Exec(ctx, query, departmentCode)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

// ResetAll очищает все данные консоли (админский сброс стенда).
func (r *Repository) ResetAll(ctx context.Context) error {
	query := `
TRUNCATE job_history RESTART IDENTITY CASCADE;
TRUNCATE employees RESTART IDENTITY CASCADE;
TRUNCATE jobs RESTART IDENTITY CASCADE;
TRUNCATE departments RESTART IDENTITY CASCADE;
`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}
