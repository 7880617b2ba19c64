package producer

import (
	"time"

	"github.com/google/uuid"
)

// EmployeePayload — событие об изменении карточки сотрудника.
type EmployeePayload struct {
	EmployeeNumber int64    `json:"employee_number"`
	Action         string   `json:"action"` // created | updated | deleted
	FirstName      *string  `json:"first_name,omitempty"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	JobCode        string   `json:"job_code"`
	DepartmentCode string   `json:"department_code"`
	Salary         *float64 `json:"salary,omitempty"`
}

// HistoryPayload — событие о замене истории должностей сотрудника.
type HistoryPayload struct {
	EmployeeNumber int64          `json:"employee_number"`
	Entries        []HistoryEntry `json:"entries"`
}

type HistoryEntry struct {
	JobCode        string   `json:"job_code"`
	DepartmentCode string   `json:"department_code"`
	EffectiveDate  string   `json:"effective_date"`
	Salary         *float64 `json:"salary,omitempty"`
}

type Envelope[T any] struct {
	Kind           string    `json:"kind"` // employee | history
	MessageID      uuid.UUID `json:"message_id"`
	EmployeeNumber int64     `json:"employee_number"`
	Payload        T         `json:"payload"`
	Timestamp      time.Time `json:"timestamp"`
	Source         string    `json:"source"` // сервис-источник
}
