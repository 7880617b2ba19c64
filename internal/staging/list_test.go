package staging

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Artexxx/HR-Console/internal/dto"
)

func entry(jobCode, departmentCode, effectiveDate string, salary *float64) dto.JobHistoryEntry {
	return dto.JobHistoryEntry{
		JobCode:        jobCode,
		DepartmentCode: departmentCode,
		EffectiveDate:  effectiveDate,
		Salary:         salary,
	}
}

func fptr(v float64) *float64 { return &v }

func TestList_AddValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    dto.JobHistoryEntry
		field string
	}{
		{"no job code", entry("", "QA", "2024-01-15", nil), "job_code"},
		{"no department code", entry("QA_ENG", "", "2024-01-15", nil), "department_code"},
		{"no effective date", entry("QA_ENG", "QA", "", nil), "effective_date"},
		{"malformed effective date", entry("QA_ENG", "QA", "15.01.2024", nil), "effective_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notified := false
			list := NewList(func([]dto.JobHistoryEntry) { notified = true })

			_, err := list.Add(tc.in)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
			if list.Len() != 0 {
				t.Fatalf("expected list unchanged, got len %d", list.Len())
			}
			if notified {
				t.Fatalf("onChange must not fire on failed add")
			}
		})
	}
}

func TestList_AddOrdering(t *testing.T) {
	t.Parallel()

	var lastSeen []dto.JobHistoryEntry
	list := NewList(func(entries []dto.JobHistoryEntry) { lastSeen = entries })

	e1 := entry("DEV", "ENG", "2024-01-15", fptr(90000))
	e2 := entry("QA_ENG", "QA", "2024-02-01", nil)
	e3 := entry("SR_DEV", "ENG", "2024-06-01", fptr(105000))

	for _, e := range []dto.JobHistoryEntry{e1, e2, e3} {
		if _, err := list.Add(e); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	got := list.Entries()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}

	wantJobs := []string{"DEV", "QA_ENG", "SR_DEV"}
	for i, want := range wantJobs {
		if got[i].JobCode != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].JobCode)
		}
		if got[i].LocalID == uuid.Nil {
			t.Fatalf("position %d: local id not assigned", i)
		}
	}

	if got[0].LocalID == got[1].LocalID || got[1].LocalID == got[2].LocalID {
		t.Fatalf("local ids must be unique within a session")
	}

	// onChange получает полный актуальный срез, а не diff.
	if len(lastSeen) != 3 || lastSeen[2].JobCode != "SR_DEV" {
		t.Fatalf("onChange did not receive the full updated sequence: %+v", lastSeen)
	}
}

func TestList_EditPreservesPosition(t *testing.T) {
	t.Parallel()

	list := NewList(nil)
	for _, code := range []string{"E1", "E2", "E3"} {
		if _, err := list.Add(entry(code, "ENG", "2024-01-15", nil)); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	target := list.Entries()[1]

	got, err := list.Edit(target.LocalID, entry("E2_NEW", "QA", "2024-03-01", fptr(100000)))
	if err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}

	wantJobs := []string{"E1", "E2_NEW", "E3"}
	for i, want := range wantJobs {
		if got[i].JobCode != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].JobCode)
		}
	}

	if got[1].LocalID != target.LocalID {
		t.Fatalf("edit must keep the local id")
	}
	if got[1].DepartmentCode != "QA" || got[1].EffectiveDate != "2024-03-01" {
		t.Fatalf("edited payload not applied: %+v", got[1])
	}
}

func TestList_EditValidation(t *testing.T) {
	t.Parallel()

	list := NewList(nil)
	if _, err := list.Add(entry("DEV", "ENG", "2024-01-15", nil)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	localID := list.Entries()[0].LocalID

	_, err := list.Edit(localID, entry("", "ENG", "2024-02-01", nil))

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "job_code" {
		t.Fatalf("expected ValidationError{job_code}, got %v", err)
	}
	if list.Entries()[0].JobCode != "DEV" {
		t.Fatalf("failed edit must not touch the entry")
	}
}

func TestList_RemovePreservesOrder(t *testing.T) {
	t.Parallel()

	list := NewList(nil)
	for _, code := range []string{"E1", "E2", "E3"} {
		if _, err := list.Add(entry(code, "ENG", "2024-01-15", nil)); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	got, err := list.Remove(list.Entries()[1].LocalID)
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	if len(got) != 2 || got[0].JobCode != "E1" || got[1].JobCode != "E3" {
		t.Fatalf("expected [E1 E3], got %+v", got)
	}
}

func TestList_UnknownLocalID(t *testing.T) {
	t.Parallel()

	list := NewList(nil)
	if _, err := list.Add(entry("DEV", "ENG", "2024-01-15", nil)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	unknown := uuid.New()

	if _, err := list.Edit(unknown, entry("QA_ENG", "QA", "2024-02-01", nil)); !errors.Is(err, dto.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on edit, got %v", err)
	}
	if _, err := list.Remove(unknown); !errors.Is(err, dto.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on remove, got %v", err)
	}
	if list.Len() != 1 {
		t.Fatalf("list must stay unmodified, got len %d", list.Len())
	}
}

func TestList_SeedDoesNotNotify(t *testing.T) {
	t.Parallel()

	notified := false
	list := NewList(func([]dto.JobHistoryEntry) { notified = true })

	list.Seed([]dto.JobHistoryEntry{
		entry("DEV", "ENG", "2023-01-01", nil),
		entry("SR_DEV", "ENG", "2024-01-01", fptr(110000)),
	})

	if notified {
		t.Fatalf("Seed is initialization, onChange must not fire")
	}
	if list.Len() != 2 {
		t.Fatalf("expected 2 seeded entries, got %d", list.Len())
	}
	for i, e := range list.Entries() {
		if e.LocalID == uuid.Nil {
			t.Fatalf("seeded entry %d has no local id", i)
		}
	}
}

func TestList_Scenario(t *testing.T) {
	t.Parallel()

	list := NewList(nil)

	if _, err := list.Add(entry("DEV", "ENG", "2024-01-15", fptr(90000))); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if list.Len() != 1 {
		t.Fatalf("expected len 1, got %d", list.Len())
	}

	_, err := list.Add(entry("", "ENG", "2024-02-01", nil))
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "job_code" {
		t.Fatalf("expected ValidationError{job_code}, got %v", err)
	}
	if list.Len() != 1 {
		t.Fatalf("failed add must keep len 1, got %d", list.Len())
	}

	firstLocalID := list.Entries()[0].LocalID

	got, err := list.Edit(firstLocalID, entry("SR_DEV", "ENG", "2024-06-01", fptr(105000)))
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if len(got) != 1 || got[0].JobCode != "SR_DEV" || *got[0].Salary != 105000 {
		t.Fatalf("edit did not apply: %+v", got)
	}

	if _, err := list.Remove(firstLocalID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if list.Len() != 0 {
		t.Fatalf("expected empty list, got %d", list.Len())
	}
}
