package api

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Console/internal/export"
)

// @Summary Выгрузка реестра сотрудников в Excel
// @Tags    Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} errorResponse
// @Router  /export/employees [get]
func (s *Service) exportEmployees(ctx *fasthttp.RequestCtx) {
	rows, err := s.employees.List(ctx)
	if err != nil {
		serverError(ctx, err)
		return
	}

	buf, filename, err := export.EmployeeRoster(rows, s.cache)
	if err != nil {
		serverError(ctx, err)
		return
	}

	ctx.Response.Header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.SetStatusCode(fasthttp.StatusOK)
	_, _ = ctx.Write(buf.Bytes())
}
