package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/staging"
)

type employeeRequest struct {
	FirstName      *string  `json:"first_name" example:"Анна"`
	LastName       string   `json:"last_name" example:"Иванова"`
	Email          string   `json:"email" example:"anna.ivanova@company.ru"`
	Phone          *string  `json:"phone" example:"+7 916 123-45-67"`
	HireDate       string   `json:"hire_date" example:"2021-03-01"`
	JobCode        string   `json:"job_code" example:"QA_ENG"`
	DepartmentCode string   `json:"department_code" example:"QA"`
	Salary         *float64 `json:"salary" example:"120000"`
}

type createEmployeeRequest struct {
	employeeRequest
	// Записи истории должностей, набранные в диалоге до сохранения карточки.
	History []historyEntryRequest `json:"history"`
}

type historyEntryRequest struct {
	JobCode        string   `json:"job_code" example:"QA_ENG"`
	DepartmentCode string   `json:"department_code" example:"QA"`
	EffectiveDate  string   `json:"effective_date" example:"2024-01-15"`
	Salary         *float64 `json:"salary" example:"90000"`
}

func (r historyEntryRequest) toEntry() dto.JobHistoryEntry {
	return dto.JobHistoryEntry{
		JobCode:        r.JobCode,
		DepartmentCode: r.DepartmentCode,
		EffectiveDate:  r.EffectiveDate,
		Salary:         r.Salary,
	}
}

func parseEmployeeNumber(ctx *fasthttp.RequestCtx) (int64, bool) {
	raw := ctx.UserValue("employee_number").(string)

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		badRequest(ctx, "invalid_employee_number", "Некорректный табельный номер")
		return 0, false
	}

	return n, true
}

// @Summary Список сотрудников
// @Tags    CRUD-Employees
// @Produce json
// @Success 200 {object} listResponse
// @Failure 500 {object} errorResponse
// @Router  /employees [get]
func (s *Service) listEmployees(ctx *fasthttp.RequestCtx) {
	rows, err := s.employees.List(ctx)
	if err != nil {
		serverError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, listResponse{Items: rows})
}

// @Summary Карточка сотрудника
// @Tags    CRUD-Employees
// @Produce json
// @Param   employee_number path int true "Табельный номер"
// @Success 200 {object} dto.Employee
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /employees/{employee_number} [get]
func (s *Service) getEmployee(ctx *fasthttp.RequestCtx) {
	employeeNumber, okParse := parseEmployeeNumber(ctx)
	if !okParse {
		return
	}

	emp, err := s.employees.Get(ctx, employeeNumber)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			notFound(ctx, "employee_not_found", "Сотрудник не найден")
			return
		}
		serverError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, emp)
}

// @Summary Создать сотрудника (вместе с набранной историей должностей)
// @Tags    CRUD-Employees
// @Accept  json
// @Produce json
// @Param   request body createEmployeeRequest true "Карточка и staging-список истории"
// @Success 200 {object} createdResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /employees [post]
func (s *Service) createEmployee(ctx *fasthttp.RequestCtx) {
	var req createEmployeeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}

	if msg := validateEmployee(req.employeeRequest); msg != "" {
		badRequest(ctx, "invalid_employee", msg)
		return
	}

	// Staging-список собирается через Add: каждая запись проходит ту же
	// валидацию, что и в диалоге формы.
	list := staging.NewList(nil)
	for i, entryReq := range req.History {
		if _, err := list.Add(entryReq.toEntry()); err != nil {
			badRequest(ctx, "invalid_history_entry", fmt.Sprintf("Запись истории %d: %s", i+1, err.Error()))
			return
		}
	}

	emp := dto.Employee{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		HireDate:       req.HireDate,
		JobCode:        req.JobCode,
		DepartmentCode: req.DepartmentCode,
		Salary:         req.Salary,
	}

	employeeNumber, err := s.committer.CommitCreate(ctx, list, emp)
	if err != nil {
		if errors.Is(err, dto.ErrAlreadyExists) {
			conflict(ctx, "employee_already_exists", "Сотрудник с такой почтой уже существует")
			return
		}
		serverError(ctx, err)
		return
	}

	emp.EmployeeNumber = employeeNumber
	s.produceEmployeeChange(ctx, "created", emp)

	writeJSON(ctx, fasthttp.StatusOK, createdResponse{
		Status:         "ok",
		EmployeeNumber: employeeNumber,
		Msg:            "Сотрудник сохранён",
	})
}

// @Summary Обновить карточку сотрудника
// @Tags    CRUD-Employees
// @Accept  json
// @Produce json
// @Param   employee_number path int true "Табельный номер"
// @Param   request body employeeRequest true "Карточка"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /employees/{employee_number} [put]
func (s *Service) updateEmployee(ctx *fasthttp.RequestCtx) {
	employeeNumber, okParse := parseEmployeeNumber(ctx)
	if !okParse {
		return
	}

	var req employeeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}

	if msg := validateEmployee(req); msg != "" {
		badRequest(ctx, "invalid_employee", msg)
		return
	}

	emp := dto.Employee{
		EmployeeNumber: employeeNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		HireDate:       req.HireDate,
		JobCode:        req.JobCode,
		DepartmentCode: req.DepartmentCode,
		Salary:         req.Salary,
	}

	if err := s.employees.Update(ctx, emp); err != nil {
		switch {
		case errors.Is(err, dto.ErrNotFound):
			notFound(ctx, "employee_not_found", "Сотрудник не найден")
		case errors.Is(err, dto.ErrAlreadyExists):
			conflict(ctx, "employee_already_exists", "Сотрудник с такой почтой уже существует")
		default:
			serverError(ctx, err)
		}
		return
	}

	s.produceEmployeeChange(ctx, "updated", emp)
	ok(ctx, "Карточка обновлена")
}

// @Summary Удалить сотрудника (история удаляется каскадно)
// @Tags    CRUD-Employees
// @Produce json
// @Param   employee_number path int true "Табельный номер"
// @Success 200 {object} okResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /employees/{employee_number} [delete]
func (s *Service) deleteEmployee(ctx *fasthttp.RequestCtx) {
	employeeNumber, okParse := parseEmployeeNumber(ctx)
	if !okParse {
		return
	}

	emp, err := s.employees.Get(ctx, employeeNumber)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			notFound(ctx, "employee_not_found", "Сотрудник не найден")
			return
		}
		serverError(ctx, err)
		return
	}

	if err := s.employees.Delete(ctx, employeeNumber); err != nil {
		serverError(ctx, err)
		return
	}

	s.produceEmployeeChange(ctx, "deleted", *emp)
	ok(ctx, "Сотрудник удалён")
}

func (s *Service) produceEmployeeChange(ctx *fasthttp.RequestCtx, action string, emp dto.Employee) {
	if s.producer == nil {
		return
	}

	// Отказ публикации не ломает ответ клиенту: строка уже записана.
	_ = s.producer.ProduceEmployeeChange(ctx, action, emp)
}
