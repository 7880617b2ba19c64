package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/refdata"
	"github.com/Artexxx/HR-Console/internal/staging"
)

type historyItem struct {
	dto.JobHistoryEntry
	JobTitle       string `json:"job_title" example:"Инженер по тестированию"`
	DepartmentName string `json:"department_name" example:"Отдел качества"`
}

type replaceHistoryRequest struct {
	History []historyEntryRequest `json:"history"`
}

// @Summary История должностей сотрудника
// @Tags    History
// @Produce json
// @Param   employee_number path int true "Табельный номер"
// @Success 200 {object} listResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /employees/{employee_number}/history [get]
func (s *Service) listHistory(ctx *fasthttp.RequestCtx) {
	employeeNumber, okParse := parseEmployeeNumber(ctx)
	if !okParse {
		return
	}

	if _, err := s.employees.Get(ctx, employeeNumber); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			notFound(ctx, "employee_not_found", "Сотрудник не найден")
			return
		}
		serverError(ctx, err)
		return
	}

	rows, err := s.history.ListByEmployee(ctx, employeeNumber)
	if err != nil {
		serverError(ctx, err)
		return
	}

	// Коды расшифровываются через справочный кэш; промах — показываем код.
	items := make([]historyItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, historyItem{
			JobHistoryEntry: row,
			JobTitle:        s.cache.Describe(refdata.KindJob, row.JobCode),
			DepartmentName:  s.cache.Describe(refdata.KindDepartment, row.DepartmentCode),
		})
	}

	writeJSON(ctx, fasthttp.StatusOK, listResponse{Items: items})
}

// @Summary Заменить историю должностей целиком (delete-then-insert в одной транзакции)
// @Tags    History
// @Accept  json
// @Produce json
// @Param   employee_number path int true "Табельный номер"
// @Param   request body replaceHistoryRequest true "Итоговый staging-список"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /employees/{employee_number}/history [put]
func (s *Service) replaceHistory(ctx *fasthttp.RequestCtx) {
	employeeNumber, okParse := parseEmployeeNumber(ctx)
	if !okParse {
		return
	}

	if _, err := s.employees.Get(ctx, employeeNumber); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			notFound(ctx, "employee_not_found", "Сотрудник не найден")
			return
		}
		serverError(ctx, err)
		return
	}

	var req replaceHistoryRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}

	list := staging.NewList(nil)
	for i, entryReq := range req.History {
		if _, err := list.Add(entryReq.toEntry()); err != nil {
			badRequest(ctx, "invalid_history_entry", fmt.Sprintf("Запись истории %d: %s", i+1, err.Error()))
			return
		}
	}

	if err := s.committer.CommitReplace(ctx, list, employeeNumber); err != nil {
		serverError(ctx, err)
		return
	}

	if s.producer != nil {
		_ = s.producer.ProduceHistoryReplaced(ctx, employeeNumber, list.Entries())
	}

	ok(ctx, "История должностей сохранена")
}
