package history

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

type txContextKey struct{}

type Repository struct {
	pool PgxPoolIface
}

func NewRepository(pool PgxPoolIface) *Repository {
	return &Repository{pool: pool}
}

type queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// q возвращает транзакцию из контекста, если WithinTx уже открыл её,
// иначе — пул.
func (r *Repository) q(ctx context.Context) queryer {
	if tx, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.pool
}

// WithinTx выполняет fn в одной транзакции. Вложенный вызов переиспользует
// уже открытую транзакцию из контекста.
func (r *Repository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pool.Begin: %w", err)
	}

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("tx.Rollback: %w", rbErr))
		}

		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}

// InsertBatch вставляет записи строго в порядке среза: порядок staging-списка
// и есть порядок записи, пересортировкой занимается чтение.
func (r *Repository) InsertBatch(ctx context.Context, employeeNumber int64, entries []dto.JobHistoryEntry) error {
	query := `
INSERT INTO job_history
	(employee_number, job_code, department_code, effective_date, salary)
VALUES
	($1, $2, $3, $4::date, $5);
`
	for _, e := range entries {
		_, err := r.q(ctx).Exec(ctx, query, employeeNumber, e.JobCode, e.DepartmentCode, e.EffectiveDate, e.Salary)
		if err != nil {
			return fmt.Errorf("pool.Exec: %w", err)
		}
	}

	return nil
}

func (r *Repository) DeleteForEmployee(ctx context.Context, employeeNumber int64) error {
	query := `DELETE FROM job_history WHERE employee_number = $1`

	_, err := r.q(ctx).Exec(ctx, query, employeeNumber)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

// ListByEmployee читает историю сотрудника; хранилище всегда отдаёт её
// по effective_date по убыванию, независимо от порядка вставки.
func (r *Repository) ListByEmployee(ctx context.Context, employeeNumber int64) ([]dto.JobHistoryEntry, error) {
	query := `
SELECT employee_number,
	   job_code,
	   department_code,
	   to_char(effective_date,'YYYY-MM-DD'),
	   salary
FROM job_history
WHERE employee_number = $1
ORDER BY effective_date DESC
`
	rows, err := r.q(ctx).Query(ctx, query, employeeNumber)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.JobHistoryEntry
	for rows.Next() {
		var it dto.JobHistoryEntry

		err = rows.Scan(&it.EmployeeNumber, &it.JobCode, &it.DepartmentCode, &it.EffectiveDate, &it.Salary)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}
