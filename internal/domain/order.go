package domain

import "vendora-dispatch/internal/geo"

// OrderStatusPaid is the only order status dispatch accepts.
const OrderStatusPaid = "paid"

// StoreLocation is the configured pickup (base) location of a store.
type StoreLocation struct {
	StoreID     string
	BaseLat     *float64
	BaseLng     *float64
	BaseAddress string
}

// Pickup returns the store base point; ok is false when a coordinate is missing.
func (s StoreLocation) Pickup() (geo.Point, bool) {
	return point(s.BaseLat, s.BaseLng)
}

// Order is a paid order joined with its store location.
type Order struct {
	ID              string
	Status          string
	CustomerName    string
	CustomerAddress string
	CustomerLat     *float64
	CustomerLng     *float64
	StoreID         string
	VendorID        string
	Store           StoreLocation
}

// Dropoff returns the customer point; ok is false when a coordinate is missing.
func (o Order) Dropoff() (geo.Point, bool) {
	return point(o.CustomerLat, o.CustomerLng)
}

func point(lat, lng *float64) (geo.Point, bool) {
	if lat == nil || lng == nil {
		return geo.Point{}, false
	}
	return geo.Point{Lat: *lat, Lng: *lng}, true
}
