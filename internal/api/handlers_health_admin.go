package api

import (
	"fmt"

	"github.com/valyala/fasthttp"
)

// @Summary Проверка здоровья сервиса
// @Tags    Admin
// @Success 200 {object} okResponse
// @Router  /health [get]
func (s *Service) healthHandler(ctx *fasthttp.RequestCtx) {
	ok(ctx, "OK")
}

// @Summary Полная очистка данных консоли (truncate tables.*)
// @Tags    Admin
// @Param   Authorization header string true "Bearer <supabase access token>"
// @Success 200 {object} okResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /admin/reset [post]
func (s *Service) resetHandler(ctx *fasthttp.RequestCtx) {
	if !s.requireAdmin(ctx) {
		return
	}

	if err := s.refdata.ResetAll(ctx); err != nil {
		serverError(ctx, fmt.Errorf("refdata.ResetAll: %w", err))
		return
	}

	ok(ctx, "Все данные очищены")
}
