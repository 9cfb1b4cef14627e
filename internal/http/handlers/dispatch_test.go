package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora-dispatch/internal/apperr"
	"vendora-dispatch/internal/domain"
	testlog "vendora-dispatch/internal/testutil"
)

type stubDispatchUsecase struct {
	dispatchFn func(ctx context.Context, orderID string) (domain.DispatchResult, error)
}

func (s *stubDispatchUsecase) Dispatch(ctx context.Context, orderID string) (domain.DispatchResult, error) {
	if s.dispatchFn == nil {
		panic("Dispatch not expected in this test")
	}
	return s.dispatchFn(ctx, orderID)
}

func postAssign(h *DispatchHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/assign-delivery", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Assign(rr, req)
	return rr
}

func TestDispatchHandler_Assign_Offered(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		dispatchFn: func(_ context.Context, orderID string) (domain.DispatchResult, error) {
			require.Equal(t, "O1", orderID)
			return domain.DispatchResult{
				AssignmentID:             "asg-1",
				Status:                   domain.AssignmentOffered,
				RiderAssigned:            true,
				RiderID:                  "R1",
				DistanceKm:               4.22,
				DeliveryFeeKobo:          200000,
				EstimatedDurationMinutes: 15,
			}, nil
		},
	}

	rr := postAssign(NewDispatchHandler(nil, uc), `{"order_id":"O1","amount":5000}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
        "success": true,
        "assignment_id": "asg-1",
        "status": "offered",
        "rider_assigned": true,
        "rider_id": "R1",
        "distance_km": 4.22,
        "delivery_fee_kobo": 200000,
        "estimated_duration_minutes": 15
    }`, rr.Body.String())
}

func TestDispatchHandler_Assign_QueuedOmitsRider(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		dispatchFn: func(context.Context, string) (domain.DispatchResult, error) {
			return domain.DispatchResult{
				AssignmentID:             "asg-2",
				Status:                   domain.AssignmentQueued,
				DistanceKm:               1.5,
				DeliveryFeeKobo:          100000,
				EstimatedDurationMinutes: 15,
			}, nil
		},
	}

	rr := postAssign(NewDispatchHandler(nil, uc), `{"order_id":"O2"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
        "success": true,
        "assignment_id": "asg-2",
        "status": "queued",
        "rider_assigned": false,
        "distance_km": 1.5,
        "delivery_fee_kobo": 100000,
        "estimated_duration_minutes": 15
    }`, rr.Body.String())
}

func TestDispatchHandler_Assign_Existing(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		dispatchFn: func(context.Context, string) (domain.DispatchResult, error) {
			return domain.DispatchResult{AssignmentID: "asg-1", Status: domain.AssignmentAccepted, Existing: true}, nil
		},
	}

	rr := postAssign(NewDispatchHandler(nil, uc), `{"order_id":"O1"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
        "success": true,
        "assignment_id": "asg-1",
        "status": "accepted",
        "message": "Delivery assignment already exists"
    }`, rr.Body.String())
}

func TestDispatchHandler_Assign_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"malformed json", `{"order_id":`, "invalid json"},
		{"trailing data", `{"order_id":"O1"} {}`, "invalid json: trailing data"},
		{"missing order_id", `{}`, "order_id is required"},
		{"empty order_id", `{"order_id":""}`, "order_id is required"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := postAssign(NewDispatchHandler(nil, &stubDispatchUsecase{}), tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"success":false,"error":%q}`, tt.msg), rr.Body.String())
		})
	}
}

func TestDispatchHandler_Assign_LongOrderIDReachesUsecase(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 300)
	var got string
	uc := &stubDispatchUsecase{
		dispatchFn: func(_ context.Context, orderID string) (domain.DispatchResult, error) {
			got = orderID
			return domain.DispatchResult{}, fmt.Errorf("%w: order %q does not exist or is not paid", apperr.ErrNotFound, orderID)
		},
	}

	rr := postAssign(NewDispatchHandler(nil, uc), fmt.Sprintf(`{"order_id":%q}`, long))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, long, got)
}

func TestDispatchHandler_Assign_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"invalid", fmt.Errorf("%w: order_id is required", apperr.ErrInvalid), http.StatusBadRequest, "invalid input: order_id is required"},
		{"not found", fmt.Errorf("%w: order \"O1\" does not exist or is not paid", apperr.ErrNotFound), http.StatusNotFound, "not found: order \"O1\" does not exist or is not paid"},
		{"conflict", apperr.ErrConflict, http.StatusConflict, "delivery assignment is being created concurrently"},
		{"store", fmt.Errorf("%w: insert assignment: %w", apperr.ErrUnavailable, errors.New("password auth failed for user")), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := testlog.New()
			uc := &stubDispatchUsecase{
				dispatchFn: func(context.Context, string) (domain.DispatchResult, error) {
					return domain.DispatchResult{}, tt.err
				},
			}

			rr := postAssign(NewDispatchHandler(rec.Logger(), uc), `{"order_id":"O1"}`)

			assert.Equal(t, tt.status, rr.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"success":false,"error":%q}`, tt.msg), rr.Body.String())
			assert.True(t, rec.Has("warn", "http error"))
		})
	}
}

func TestDispatchHandler_Preflight(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodOptions, "/assign-delivery", nil)
	rr := httptest.NewRecorder()

	NewDispatchHandler(nil, &stubDispatchUsecase{}).Preflight(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "content-type")
}

func TestDispatchHandler_PreflightKeepsUpstreamHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodOptions, "/assign-delivery", nil)
	rr := httptest.NewRecorder()
	rr.Header().Set("Access-Control-Allow-Origin", "https://shop.example")

	NewDispatchHandler(nil, &stubDispatchUsecase{}).Preflight(rr, req)

	assert.Equal(t, "https://shop.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
