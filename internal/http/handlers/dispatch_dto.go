package handlers

type assignDeliveryRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

type assignDeliveryResponse struct {
	Success                  bool    `json:"success"`
	AssignmentID             string  `json:"assignment_id"`
	Status                   string  `json:"status"`
	RiderAssigned            bool    `json:"rider_assigned"`
	RiderID                  string  `json:"rider_id,omitempty"`
	DistanceKm               float64 `json:"distance_km"`
	DeliveryFeeKobo          int64   `json:"delivery_fee_kobo"`
	EstimatedDurationMinutes int     `json:"estimated_duration_minutes"`
}

type existingAssignmentResponse struct {
	Success      bool   `json:"success"`
	AssignmentID string `json:"assignment_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}
