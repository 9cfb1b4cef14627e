package handlers

import "vendora-dispatch/internal/domain"

const existingAssignmentMessage = "Delivery assignment already exists"

func dispatchResultToResponse(res domain.DispatchResult) any {
	if res.Existing {
		return existingAssignmentResponse{
			Success:      true,
			AssignmentID: res.AssignmentID,
			Status:       string(res.Status),
			Message:      existingAssignmentMessage,
		}
	}
	return assignDeliveryResponse{
		Success:                  true,
		AssignmentID:             res.AssignmentID,
		Status:                   string(res.Status),
		RiderAssigned:            res.RiderAssigned,
		RiderID:                  res.RiderID,
		DistanceKm:               res.DistanceKm,
		DeliveryFeeKobo:          res.DeliveryFeeKobo,
		EstimatedDurationMinutes: res.EstimatedDurationMinutes,
	}
}
