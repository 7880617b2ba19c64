package api

import (
	"errors"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Console/internal/session"
)

func bearerToken(ctx *fasthttp.RequestCtx) string {
	auth := string(ctx.Request.Header.Peek("Authorization"))

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}

// @Summary Текущий пользователь и признак администратора
// @Tags    Session
// @Produce json
// @Param   Authorization header string true "Bearer <supabase access token>"
// @Success 200 {object} session.User
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /session [get]
func (s *Service) getSession(ctx *fasthttp.RequestCtx) {
	user, err := s.sessions.CurrentUser(ctx, bearerToken(ctx))
	if err != nil {
		if errors.Is(err, session.ErrUnauthorized) {
			unauthorized(ctx, "Токен не передан или отклонён")
			return
		}
		serverError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, user)
}

// requireAdmin закрывает разрушительные админские операции.
func (s *Service) requireAdmin(ctx *fasthttp.RequestCtx) bool {
	user, err := s.sessions.CurrentUser(ctx, bearerToken(ctx))
	if err != nil {
		if errors.Is(err, session.ErrUnauthorized) {
			unauthorized(ctx, "Токен не передан или отклонён")
			return false
		}
		serverError(ctx, err)
		return false
	}

	if !user.IsAdmin {
		forbidden(ctx, "Операция доступна только администратору")
		return false
	}

	return true
}
