package dto

// Job — справочная запись должности.
type Job struct {
	JobCode  string `json:"job_code" example:"QA_ENG"`                 // Код должности
	JobTitle string `json:"job_title" example:"Инженер по тестированию"` // Название
}

// Department — справочная запись подразделения.
type Department struct {
	DepartmentCode string `json:"department_code" example:"QA"`          // Код подразделения
	DepartmentName string `json:"department_name" example:"Отдел качества"` // Название
}
