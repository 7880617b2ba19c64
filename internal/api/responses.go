package api

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
)

type okResponse struct {
	Status string `json:"status" example:"ok"`
	Msg    string `json:"msg" example:"Готово"`
}

type createdResponse struct {
	Status         string `json:"status" example:"ok"`
	EmployeeNumber int64  `json:"employee_number" example:"207"`
	Msg            string `json:"msg" example:"Сотрудник сохранён"`
}

type listResponse struct {
	Items any `json:"items"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	_ = json.NewEncoder(ctx).Encode(body)
}

func ok(ctx *fasthttp.RequestCtx, msg string) {
	writeJSON(ctx, fasthttp.StatusOK, okResponse{Status: "ok", Msg: msg})
}

func badRequest(ctx *fasthttp.RequestCtx, code, message string) {
	writeJSON(ctx, fasthttp.StatusBadRequest, errorResponse{Code: code, Message: message})
}

func notFound(ctx *fasthttp.RequestCtx, code, message string) {
	writeJSON(ctx, fasthttp.StatusNotFound, errorResponse{Code: code, Message: message})
}

func conflict(ctx *fasthttp.RequestCtx, code, message string) {
	writeJSON(ctx, fasthttp.StatusConflict, errorResponse{Code: code, Message: message})
}

func unauthorized(ctx *fasthttp.RequestCtx, message string) {
	writeJSON(ctx, fasthttp.StatusUnauthorized, errorResponse{Code: "unauthorized", Message: message})
}

func forbidden(ctx *fasthttp.RequestCtx, message string) {
	writeJSON(ctx, fasthttp.StatusForbidden, errorResponse{Code: "forbidden", Message: message})
}

func unavailable(ctx *fasthttp.RequestCtx, code, message string) {
	writeJSON(ctx, fasthttp.StatusServiceUnavailable, errorResponse{Code: code, Message: message})
}

func serverError(ctx *fasthttp.RequestCtx, err error) {
	writeJSON(ctx, fasthttp.StatusInternalServerError, errorResponse{
		Code:    fasthttp.StatusMessage(fasthttp.StatusInternalServerError),
		Message: err.Error(),
	})
}
