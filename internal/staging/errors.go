package staging

import (
	"errors"
	"fmt"
)

// ErrBusy возвращается мутациями списка, пока не завершён запущенный коммит.
var ErrBusy = errors.New("errCommitInProgress")

// ValidationError — в записи не заполнено обязательное поле.
// Сообщается только первое найденное поле.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field '%s'", e.Field)
}

// CommitStage — шаг протокола коммита, на котором произошёл отказ.
type CommitStage string

const (
	StageEmployeeWrite    CommitStage = "employeeWrite"
	StageDeleteOldHistory CommitStage = "deleteOldHistory"
	StageInsertNewHistory CommitStage = "insertNewHistory"
)

// CommitError — отказ персистентного слоя во время коммита.
// Исходная причина сохраняется и показывается пользователю дословно.
type CommitError struct {
	Stage CommitStage
	Err   error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed at %s: %v", e.Stage, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
