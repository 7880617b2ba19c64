package staging

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type EmployeeWriter interface {
	Create(ctx context.Context, e dto.Employee) (int64, error)
}

type HistoryWriter interface {
	// WithinTx выполняет fn в одной транзакции; транзакция передаётся
	// вложенным вызовам через контекст.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	DeleteForEmployee(ctx context.Context, employeeNumber int64) error
	InsertBatch(ctx context.Context, employeeNumber int64, entries []dto.JobHistoryEntry) error
}

// Committer сбрасывает staging-список в хранилище при отправке формы.
//
// Два варианта коммита:
//   - CommitCreate — новый сотрудник: сначала карточка, затем записи
//     истории как новые строки под назначенным табельным номером;
//   - CommitReplace — редактирование истории существующего сотрудника:
//     удалить все строки, вставить содержимое списка заново. Оба шага
//     идут в одной транзакции, частичное состояние наружу не выходит.
//
// При любом отказе список остаётся ровно таким, каким был до попытки,
// чтобы пользователь мог повторить отправку без повторного ввода.
type Committer struct {
	employees EmployeeWriter
	history   HistoryWriter
	notifier  Notifier
	log       zerolog.Logger
}

func NewCommitter(employees EmployeeWriter, history HistoryWriter, notifier Notifier, log zerolog.Logger) *Committer {
	return &Committer{
		employees: employees,
		history:   history,
		notifier:  notifier,
		log:       log.With().Str("component", "committer").Logger(),
	}
}

// CommitCreate — аддитивный коммит для нового сотрудника.
// Возвращает табельный номер, назначенный базой.
func (c *Committer) CommitCreate(ctx context.Context, list *List, employee dto.Employee) (int64, error) {
	entries, err := list.beginCommit()
	if err != nil {
		return 0, err
	}
	defer list.endCommit()

	employeeNumber, err := c.employees.Create(ctx, employee)
	if err != nil {
		cerr := &CommitError{Stage: StageEmployeeWrite, Err: err}
		c.fail("Сотрудник не сохранён", cerr)
		return 0, cerr
	}

	if len(entries) > 0 {
		if err := c.history.InsertBatch(ctx, employeeNumber, entries); err != nil {
			cerr := &CommitError{Stage: StageInsertNewHistory, Err: err}
			c.fail("История должностей не сохранена", cerr)
			return employeeNumber, cerr
		}
	}

	list.reseed(employeeNumber, entries)
	c.success("Сотрудник сохранён",
		fmt.Sprintf("Табельный номер %d, записей истории: %d", employeeNumber, len(entries)))

	return employeeNumber, nil
}

// CommitReplace — замещающий коммит: delete-then-insert для одного
// сотрудника, в порядке записей staging-списка.
func (c *Committer) CommitReplace(ctx context.Context, list *List, employeeNumber int64) error {
	entries, err := list.beginCommit()
	if err != nil {
		return err
	}
	defer list.endCommit()

	err = c.history.WithinTx(ctx, func(ctx context.Context) error {
		if err := c.history.DeleteForEmployee(ctx, employeeNumber); err != nil {
			return &CommitError{Stage: StageDeleteOldHistory, Err: err}
		}

		if err := c.history.InsertBatch(ctx, employeeNumber, entries); err != nil {
			return &CommitError{Stage: StageInsertNewHistory, Err: err}
		}

		return nil
	})
	if err != nil {
		c.fail("История должностей не сохранена", err)
		return err
	}

	list.reseed(employeeNumber, entries)
	c.success("История должностей сохранена",
		fmt.Sprintf("Табельный номер %d, записей: %d", employeeNumber, len(entries)))

	return nil
}

func (c *Committer) success(title, description string) {
	c.log.Info().Str("title", title).Msg(description)

	if c.notifier != nil {
		c.notifier.Notify(Notification{Title: title, Description: description, Severity: SeveritySuccess})
	}
}

func (c *Committer) fail(title string, err error) {
	c.log.Error().Err(err).Msg(title)

	if c.notifier != nil {
		c.notifier.Notify(Notification{Title: title, Description: err.Error(), Severity: SeverityError})
	}
}
