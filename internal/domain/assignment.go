package domain

import "time"

// AssignmentStatus is the lifecycle state of a delivery assignment.
type AssignmentStatus string

// Assignment statuses. Dispatch only ever writes queued or offered.
const (
	AssignmentQueued    AssignmentStatus = "queued"
	AssignmentOffered   AssignmentStatus = "offered"
	AssignmentAccepted  AssignmentStatus = "accepted"
	AssignmentCompleted AssignmentStatus = "completed"
)

var allowedAssignmentStatuses = [...]AssignmentStatus{
	AssignmentQueued, AssignmentOffered, AssignmentAccepted, AssignmentCompleted,
}

// Valid checks if the AssignmentStatus is known.
func (s AssignmentStatus) Valid() bool {
	for _, v := range allowedAssignmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Assignment is the delivery assignment owned by this service. Pickup and
// delivery fields are snapshots taken at creation time.
type Assignment struct {
	ID                       string
	OrderID                  string
	RiderSessionID           *string
	VendorID                 string
	PickupLat                float64
	PickupLng                float64
	PickupAddress            string
	DeliveryLat              float64
	DeliveryLng              float64
	DeliveryAddress          string
	DistanceKm               float64
	DeliveryFeeKobo          int64
	EstimatedDurationMinutes int
	Status                   AssignmentStatus
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// RiderID returns the assigned rider id or "" for a queued assignment.
func (a Assignment) RiderID() string {
	if a.RiderSessionID == nil {
		return ""
	}
	return *a.RiderSessionID
}

// DispatchResult is the outcome of a dispatch call.
type DispatchResult struct {
	AssignmentID string
	Status       AssignmentStatus
	// Existing is true when an assignment for the order already existed and was returned unchanged.
	Existing                 bool
	RiderAssigned            bool
	RiderID                  string
	DistanceKm               float64
	DeliveryFeeKobo          int64
	EstimatedDurationMinutes int
}

// SweepResult summarises one pass over queued assignments.
type SweepResult struct {
	Scanned int
	Offered int
}
