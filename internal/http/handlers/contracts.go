package handlers

import (
	"context"

	"vendora-dispatch/internal/domain"
	"vendora-dispatch/internal/service/dispatch"
)

type dispatchUsecase interface {
	Dispatch(ctx context.Context, orderID string) (domain.DispatchResult, error)
}

// NewDispatchUsecase wires a dispatch Service into a dispatchUsecase.
func NewDispatchUsecase(svc *dispatch.Service) dispatchUsecase {
	return svc
}
