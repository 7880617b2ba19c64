package history

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/Artexxx/HR-Console/internal/dto"
)

func TestRepository_WithinTx_DeleteThenInsertCommits(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM job_history").
		WithArgs(int64(207)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("INSERT INTO job_history").
		WithArgs(int64(207), "S1", "ENG", "2024-01-15", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO job_history").
		WithArgs(int64(207), "S2", "QA", "2024-02-01", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	entries := []dto.JobHistoryEntry{
		{JobCode: "S1", DepartmentCode: "ENG", EffectiveDate: "2024-01-15"},
		{JobCode: "S2", DepartmentCode: "QA", EffectiveDate: "2024-02-01"},
	}

	err = repo.WithinTx(context.Background(), func(ctx context.Context) error {
		if err := repo.DeleteForEmployee(ctx, 207); err != nil {
			return err
		}
		return repo.InsertBatch(ctx, 207, entries)
	})
	if err != nil {
		t.Fatalf("WithinTx returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepository_WithinTx_RollbackOnError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewRepository(mock)

	cause := errors.New("lock timeout")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM job_history").
		WithArgs(int64(207)).
		WillReturnError(cause)
	mock.ExpectRollback()

	err = repo.WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.DeleteForEmployee(ctx, 207)
	})
	if !errors.Is(err, cause) {
		t.Fatalf("expected underlying error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepository_WithinTx_NestedReusesTransaction(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewRepository(mock)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = repo.WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.WithinTx(ctx, func(context.Context) error { return nil })
	})
	if err != nil {
		t.Fatalf("nested WithinTx returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepository_InsertBatch_OutsideTxUsesPool(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewRepository(mock)

	mock.ExpectExec("INSERT INTO job_history").
		WithArgs(int64(208), "DEV", "ENG", "2024-01-15", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.InsertBatch(context.Background(), 208, []dto.JobHistoryEntry{
		{JobCode: "DEV", DepartmentCode: "ENG", EffectiveDate: "2024-01-15"},
	})
	if err != nil {
		t.Fatalf("InsertBatch returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepository_ListByEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewRepository(mock)

	salary := 105000.0
	rows := pgxmock.NewRows([]string{"employee_number", "job_code", "department_code", "effective_date", "salary"}).
		AddRow(int64(207), "SR_DEV", "ENG", "2024-06-01", &salary).
		AddRow(int64(207), "DEV", "ENG", "2024-01-15", (*float64)(nil))

	mock.ExpectQuery("SELECT employee_number").
		WithArgs(int64(207)).
		WillReturnRows(rows)

	got, err := repo.ListByEmployee(context.Background(), 207)
	if err != nil {
		t.Fatalf("ListByEmployee returned error: %v", err)
	}

	if len(got) != 2 || got[0].JobCode != "SR_DEV" || got[1].JobCode != "DEV" {
		t.Fatalf("unexpected history: %+v", got)
	}
	if got[0].Salary == nil || *got[0].Salary != salary {
		t.Fatalf("salary not scanned: %+v", got[0].Salary)
	}
	if got[1].Salary != nil {
		t.Fatalf("expected nil salary, got %v", *got[1].Salary)
	}
}
