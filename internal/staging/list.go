package staging

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Artexxx/HR-Console/internal/dto"
)

// OnChange вызывается после каждой мутации списка (но не после Seed)
// и получает полный актуальный срез записей. Владелец формы обязан
// считать этот срез источником истины, а не вычислять diff.
type OnChange func(entries []dto.JobHistoryEntry)

// List — staging-список записей истории должностей одной формы.
//
// Список принадлежит ровно одной форме/диалогу и живёт от открытия до
// закрытия: создаётся пустым или через Seed, мутируется Add/Edit/Remove
// и либо выбрасывается, либо сбрасывается в хранилище Committer-ом.
// Порядок записей — порядок вставки; хранилище при чтении сортирует
// по effective_date само.
type List struct {
	mu       sync.Mutex
	entries  []dto.JobHistoryEntry
	onChange OnChange
	busy     bool
}

func NewList(onChange OnChange) *List {
	return &List{onChange: onChange}
}

// Seed заменяет содержимое списка целиком. Это инициализация при
// открытии формы редактирования, а не пользовательская правка,
// поэтому onChange не вызывается.
func (l *List) Seed(entries []dto.JobHistoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = l.entries[:0]
	for _, e := range entries {
		if e.LocalID == uuid.Nil {
			e.LocalID = uuid.New()
		}
		l.entries = append(l.entries, e)
	}
}

// Add валидирует запись, назначает ей новый LocalID и добавляет в конец.
func (l *List) Add(entry dto.JobHistoryEntry) ([]dto.JobHistoryEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.busy {
		return nil, ErrBusy
	}

	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	entry.LocalID = uuid.New()
	l.entries = append(l.entries, entry)

	out := l.snapshotLocked()
	l.notifyLocked(out)

	return out, nil
}

// Edit заменяет запись с данным LocalID, сохраняя её позицию в списке.
func (l *List) Edit(localID uuid.UUID, updated dto.JobHistoryEntry) ([]dto.JobHistoryEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.busy {
		return nil, ErrBusy
	}

	if err := validateEntry(updated); err != nil {
		return nil, err
	}

	idx := l.indexLocked(localID)
	if idx < 0 {
		return nil, dto.ErrNotFound
	}

	updated.LocalID = localID
	l.entries[idx] = updated

	out := l.snapshotLocked()
	l.notifyLocked(out)

	return out, nil
}

// Remove удаляет запись, сохраняя взаимный порядок остальных.
func (l *List) Remove(localID uuid.UUID) ([]dto.JobHistoryEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.busy {
		return nil, ErrBusy
	}

	idx := l.indexLocked(localID)
	if idx < 0 {
		return nil, dto.ErrNotFound
	}

	l.entries = append(l.entries[:idx], l.entries[idx+1:]...)

	out := l.snapshotLocked()
	l.notifyLocked(out)

	return out, nil
}

// Entries возвращает копию текущего содержимого в порядке вставки.
func (l *List) Entries() []dto.JobHistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshotLocked()
}

func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// beginCommit помечает список занятым на время сетевых вызовов коммита,
// чтобы форма не изменила его под уже отправленным запросом.
func (l *List) beginCommit() ([]dto.JobHistoryEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.busy {
		return nil, ErrBusy
	}
	l.busy = true

	return l.snapshotLocked(), nil
}

func (l *List) endCommit() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.busy = false
}

// reseed фиксирует успешный коммит: список пересобирается из того,
// что было записано в хранилище.
func (l *List) reseed(employeeNumber int64, entries []dto.JobHistoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = l.entries[:0]
	for _, e := range entries {
		e.EmployeeNumber = employeeNumber
		l.entries = append(l.entries, e)
	}
}

func (l *List) indexLocked(localID uuid.UUID) int {
	for i, e := range l.entries {
		if e.LocalID == localID {
			return i
		}
	}
	return -1
}

func (l *List) snapshotLocked() []dto.JobHistoryEntry {
	out := make([]dto.JobHistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *List) notifyLocked(entries []dto.JobHistoryEntry) {
	if l.onChange != nil {
		l.onChange(entries)
	}
}

func validateEntry(e dto.JobHistoryEntry) error {
	if strings.TrimSpace(e.JobCode) == "" {
		return &ValidationError{Field: "job_code"}
	}

	if strings.TrimSpace(e.DepartmentCode) == "" {
		return &ValidationError{Field: "department_code"}
	}

	if strings.TrimSpace(e.EffectiveDate) == "" {
		return &ValidationError{Field: "effective_date"}
	}

	if _, err := time.Parse("2006-01-02", strings.TrimSpace(e.EffectiveDate)); err != nil {
		return &ValidationError{Field: "effective_date"}
	}

	return nil
}
