// Package handler contains the HTTP handlers (driving adapters) that
// expose the conversion use cases over chi routes.
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/application/port"
	"github.com/hapkiduki/measure-go/internal/application/service"
	"github.com/hapkiduki/measure-go/internal/interfaces/http/middleware"
)

// ConversionHandler handles the conversion and unit catalog endpoints.
type ConversionHandler struct {
	svc *service.ConverterService
	log port.Logger
}

// NewConversionHandler creates a ConversionHandler.
//
// Parameters:
//   - svc: the converter application service
//   - log: structured logger
//
// Returns:
//   - *ConversionHandler: the handler
func NewConversionHandler(svc *service.ConverterService, log port.Logger) *ConversionHandler {
	return &ConversionHandler{svc: svc, log: log}
}

// Routes returns the chi router for the conversion endpoints.
//
// Returns:
//   - chi.Router: router with conversion routes mounted
func (h *ConversionHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/conversions", h.Convert)
	r.Get("/units", h.ListUnits)
	return r
}

// Convert handles POST /conversions.
// It decodes a ConversionRequest, performs the conversion, and renders
// the formatted result.
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req dto.ConversionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[dto.ConversionResult]("INVALID_BODY", "Request body must be valid JSON"))
		return
	}

	result, err := h.svc.Convert(r.Context(), req)
	if err != nil {
		h.renderConversionError(w, r, err)
		return
	}

	resp := dto.NewSuccessResponse(result)
	resp.Meta = &dto.ResponseMeta{RequestID: middleware.GetRequestID(r.Context())}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// ListUnits handles GET /units and returns the closed unit catalog.
func (h *ConversionHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	units := h.svc.Units(r.Context())

	resp := dto.NewSuccessResponse(units)
	resp.Meta = &dto.ResponseMeta{RequestID: middleware.GetRequestID(r.Context())}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// renderConversionError maps service errors to API error responses.
func (h *ConversionHandler) renderConversionError(w http.ResponseWriter, r *http.Request, err error) {
	code := "INTERNAL_ERROR"
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrUnknownUnit):
		code, status = "UNKNOWN_UNIT", http.StatusBadRequest
	case errors.Is(err, service.ErrDimensionMismatch):
		code, status = "DIMENSION_MISMATCH", http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidPrecision):
		code, status = "INVALID_PRECISION", http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidMode):
		code, status = "INVALID_MODE", http.StatusBadRequest
	case errors.Is(err, service.ErrNonFiniteValue):
		code, status = "NON_FINITE_VALUE", http.StatusBadRequest
	default:
		h.log.WithContext(r.Context()).Error("Conversion failed", "error", err)
	}

	render.Status(r, status)
	render.JSON(w, r, dto.NewErrorResponse[dto.ConversionResult](code, err.Error()))
}
