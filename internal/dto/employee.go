package dto

import (
	"time"
)

// Employee — карточка сотрудника.
type Employee struct {
	EmployeeNumber int64     `json:"employee_number" example:"207"`              // Табельный номер (назначается БД)
	FirstName      *string   `json:"first_name,omitempty" example:"Анна"`        // Имя
	LastName       string    `json:"last_name" example:"Иванова"`                // Фамилия
	Email          string    `json:"email" example:"anna.ivanova@company.ru"`    // Почта (уникальна)
	Phone          *string   `json:"phone,omitempty" example:"+7 916 123-45-67"` // Телефон
	HireDate       string    `json:"hire_date" example:"2021-03-01"`             // Дата приёма (YYYY-MM-DD)
	JobCode        string    `json:"job_code" example:"QA_ENG"`                  // Код должности
	DepartmentCode string    `json:"department_code" example:"QA"`               // Код подразделения
	Salary         *float64  `json:"salary,omitempty" example:"120000"`          // Оклад; отсутствие != 0
	UpdatedAt      time.Time `json:"updated_at" example:"2025-10-19T10:15:30Z"`  // Время последнего изменения
}
