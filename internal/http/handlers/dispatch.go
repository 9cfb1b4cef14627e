package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"vendora-dispatch/internal/apperr"
	"vendora-dispatch/internal/logx"
)

// DispatchHandler handles HTTP requests for delivery assignment.
type DispatchHandler struct {
	usecase  dispatchUsecase
	logger   logx.Logger
	validate *validator.Validate
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(logger logx.Logger, uc dispatchUsecase) *DispatchHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DispatchHandler{
		usecase:  uc,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Assign handles POST /assign-delivery.
// @Summary Assign delivery
// @Description Creates the delivery assignment for a paid order, or returns the existing one
// @Tags deliveries
// @Accept json
// @Produce json
// @Param request body assignDeliveryRequest true "Assign delivery payload"
// @Success 200 {object} assignDeliveryResponse
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 404 {object} ErrorResponse "order not found or not paid"
// @Failure 409 {object} ErrorResponse "concurrent assignment"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /assign-delivery [post]
func (h *DispatchHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "order_id is required")
		return
	}

	res, err := h.usecase.Dispatch(r.Context(), req.OrderID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, dispatchResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "delivery assignment is being created concurrently")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Preflight handles OPTIONS /assign-delivery when no CORS middleware answered
// it, e.g. a request without Origin. Headers already set upstream are kept.
func (h *DispatchHandler) Preflight(w http.ResponseWriter, _ *http.Request) {
	hdr := w.Header()
	for k, v := range preflightHeaders {
		if hdr.Get(k) == "" {
			hdr.Set(k, v)
		}
	}
	w.WriteHeader(http.StatusOK)
}

var preflightHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "authorization, x-client-info, apikey, content-type",
}
