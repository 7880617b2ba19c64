package employee

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

// Create вставляет карточку сотрудника. Табельный номер назначает база
// (identity-колонка), клиентского max+1 здесь нет.
func (r *Repository) Create(ctx context.Context, e dto.Employee) (int64, error) {
	query := `
insert into employees
  (first_name, last_name, email, phone, hire_date, job_code, department_code, salary, updated_at)
values
  (@first_name, @last_name, @email, @phone, @hire_date::date, @job_code, @department_code, @salary, now())
returning employee_number;
`
	args := pgx.NamedArgs{
		"first_name":      e.FirstName,
		"last_name":       e.LastName,
		"email":           e.Email,
		"phone":           e.Phone,
		"hire_date":       e.HireDate,
		"job_code":        e.JobCode,
		"department_code": e.DepartmentCode,
		"salary":          e.Salary,
	}

	var employeeNumber int64
	err := r.pool.QueryRow(ctx, query, args).Scan(&employeeNumber)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == "23505" {
			return 0, dto.ErrAlreadyExists
		}

		return 0, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return employeeNumber, nil
}

func (r *Repository) Update(ctx context.Context, e dto.Employee) error {
	query := `
update employees set
  first_name      = @first_name,
  last_name       = @last_name,
  email           = @email,
  phone           = @phone,
  hire_date       = @hire_date::date,
  job_code        = @job_code,
  department_code = @department_code,
  salary          = @salary,
  updated_at      = now()
where employee_number = @employee_number;
`
	args := pgx.NamedArgs{
		"employee_number": e.EmployeeNumber,
		"first_name":      e.FirstName,
		"last_name":       e.LastName,
		"email":           e.Email,
		"phone":           e.Phone,
		"hire_date":       e.HireDate,
		"job_code":        e.JobCode,
		"department_code": e.DepartmentCode,
		"salary":          e.Salary,
	}

	tag, err := r.pool.Exec(ctx, query, args)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == "23505" {
			return dto.ErrAlreadyExists
		}

		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, employeeNumber int64) error {
	query := `delete from employees where employee_number = $1`

	tag, err := r.pool.Exec(ctx, query, employeeNumber)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) Get(ctx context.Context, employeeNumber int64) (*dto.Employee, error) {
	query := `
select employee_number,
       first_name,
       last_name,
       email,
       phone,
       to_char(hire_date,'YYYY-MM-DD'),
       job_code,
       department_code,
       salary,
       updated_at
from employees
where employee_number = $1;
`
	row := r.pool.QueryRow(ctx, query, employeeNumber)

	out, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dto.ErrNotFound
		}

		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return out, nil
}

func (r *Repository) List(ctx context.Context) ([]dto.Employee, error) {
	query := `
select employee_number,
       first_name,
       last_name,
       email,
       phone,
       to_char(hire_date,'YYYY-MM-DD'),
       job_code,
       department_code,
       salary,
       updated_at
from employees
order by employee_number
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}

func scanEmployee(row pgx.Row) (*dto.Employee, error) {
	var e dto.Employee

	err := row.Scan(
		&e.EmployeeNumber,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Phone,
		&e.HireDate,
		&e.JobCode,
		&e.DepartmentCode,
		&e.Salary,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
