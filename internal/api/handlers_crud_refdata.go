package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type refDataResponse struct {
	Jobs        []dto.Job        `json:"jobs"`
	Departments []dto.Department `json:"departments"`
}

// @Summary Справочники должностей и подразделений для селектов форм
// @Tags    RefData
// @Produce json
// @Success 200 {object} refDataResponse
// @Failure 503 {object} errorResponse
// @Router  /refdata [get]
func (s *Service) getRefData(ctx *fasthttp.RequestCtx) {
	// Кэш грузится один раз на сессию; неудачная загрузка повторяется
	// при следующем запросе, до тех пор формы блокируют создание записей.
	if !s.cache.Loaded() {
		if err := s.cache.Load(ctx); err != nil {
			unavailable(ctx, "data_unavailable", err.Error())
			return
		}
	}

	writeJSON(ctx, fasthttp.StatusOK, refDataResponse{
		Jobs:        s.cache.Jobs(),
		Departments: s.cache.Departments(),
	})
}

// @Summary Добавить должность
// @Tags    RefData
// @Accept  json
// @Produce json
// @Param   request body dto.Job true "Должность"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /jobs [post]
func (s *Service) createJob(ctx *fasthttp.RequestCtx) {
	var req dto.Job
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}
	if strings.TrimSpace(req.JobCode) == "" || strings.TrimSpace(req.JobTitle) == "" {
		badRequest(ctx, "missing_required_field", "Отсутствует job_code или job_title")
		return
	}

	if err := s.refdata.CreateJob(ctx, req); err != nil {
		if errors.Is(err, dto.ErrAlreadyExists) {
			conflict(ctx, "job_already_exists", "Должность с таким кодом уже существует")
			return
		}
		serverError(ctx, err)
		return
	}
	ok(ctx, "Должность добавлена")
}

// @Summary Переименовать должность
// @Tags    RefData
// @Accept  json
// @Produce json
// @Param   job_code path string true "Код должности"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /jobs/{job_code} [put]
func (s *Service) updateJob(ctx *fasthttp.RequestCtx) {
	jobCode := ctx.UserValue("job_code").(string)

	var req dto.Job
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}
	if strings.TrimSpace(req.JobTitle) == "" {
		badRequest(ctx, "missing_required_field", "Отсутствует job_title")
		return
	}
	req.JobCode = jobCode

	if err := s.refdata.UpdateJob(ctx, req); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			notFound(ctx, "job_not_found", "Должность не найдена")
			return
		}
		serverError(ctx, err)
		return
	}
	ok(ctx, "Должность обновлена")
}

// @Summary Удалить должность
// @Tags    RefData
// @Produce json
// @Param   job_code path string true "Код должности"
// @Success 200 {object} okResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /jobs/{job_code} [delete]
func (s *Service) deleteJob(ctx *fasthttp.RequestCtx) {
	jobCode := ctx.UserValue("job_code").(string)

	if err := s.refdata.DeleteJob(ctx, jobCode); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			notFound(ctx, "job_not_found", "Должность не найдена")
			return
		}
		serverError(ctx, err)
		return
	}
	ok(ctx, "Должность удалена")
}

// @Summary Добавить подразделение
// @Tags    RefData
// @Accept  json
// @Produce json
// @Param   request body dto.Department true "Подразделение"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /departments [post]
func (s *Service) createDepartment(ctx *fasthttp.RequestCtx) {
	var req dto.Department
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}
	if strings.TrimSpace(req.DepartmentCode) == "" || strings.TrimSpace(req.DepartmentName) == "" {
		badRequest(ctx, "missing_required_field", "Отсутствует department_code или department_name")
		return
	}

	if err := s.refdata.CreateDepartment(ctx, req); err != nil {
		if errors.Is(err, dto.ErrAlreadyExists) {
			conflict(ctx, "department_already_exists", "Подразделение с таким кодом уже существует")
			return
		}
		serverError(ctx, err)
		return
	}
	ok(ctx, "Подразделение добавлено")
}

// @Summary Переименовать подразделение
// @Tags    RefData
// @Accept  json
// @Produce json
// @Param   department_code path string true "Код подразделения"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /departments/{department_code} [put]
func (s *Service) updateDepartment(ctx *fasthttp.RequestCtx) {
	departmentCode := ctx.UserValue("department_code").(string)

	var req dto.Department
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}
	if strings.TrimSpace(req.DepartmentName) == "" {
		badRequest(ctx, "missing_required_field", "Отсутствует department_name")
		return
	}
	req.DepartmentCode = departmentCode

	if err := s.refdata.UpdateDepartment(ctx, req); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			notFound(ctx, "department_not_found", "Подразделение не найдено")
			return
		}
		serverError(ctx, err)
		return
	}
	ok(ctx, "Подразделение обновлено")
}

// @Summary Удалить подразделение
// @Tags    RefData
// @Produce json
// @Param   department_code path string true "Код подразделения"
// @Success 200 {object} okResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /departments/{department_code} [delete]
func (s *Service) deleteDepartment(ctx *fasthttp.RequestCtx) {
	departmentCode := ctx.UserValue("department_code").(string)

	if err := s.refdata.DeleteDepartment(ctx, departmentCode); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			notFound(ctx, "department_not_found", "Подразделение не найдено")
			return
		}
		serverError(ctx, err)
		return
	}
	ok(ctx, "Подразделение удалено")
}
