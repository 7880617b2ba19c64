package dto

import (
	"github.com/google/uuid"
)

// JobHistoryEntry — запись истории должностей сотрудника.
//
// LocalID живёт только внутри staging-списка одной формы и никогда
// не попадает в хранилище: в БД строка идентифицируется составным
// ключом (employee_number, job_code, effective_date).
type JobHistoryEntry struct {
	LocalID        uuid.UUID `json:"local_id,omitempty" example:"0f2eb2b1-6a25-4d2a-8a7e-2c642e00e5ed"`
	EmployeeNumber int64     `json:"employee_number,omitempty" example:"207"` // Табельный номер
	JobCode        string    `json:"job_code" example:"QA_ENG"`               // Код должности
	DepartmentCode string    `json:"department_code" example:"QA"`            // Код подразделения
	EffectiveDate  string    `json:"effective_date" example:"2024-01-15"`     // Дата вступления в силу (YYYY-MM-DD)
	Salary         *float64  `json:"salary,omitempty" example:"90000"`        // Оклад на момент записи; отсутствие != 0
}
