package kernel

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates that an Address was not created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// GeoPoint is an optional WGS84 coordinate pair attached to an address.
// It is supplied by the geocoding collaborator; the core never derives it.
type GeoPoint struct {
	lat float64
	lon float64
}

// NewGeoPoint validates and creates a coordinate pair.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	if lat < -90 || lat > 90 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", lat, -90, 90)
	}
	if lon < -180 || lon > 180 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", lon, -180, 180)
	}
	return GeoPoint{lat: lat, lon: lon}, nil
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// Address is a free-form street address with an optional geocoded point.
// The text is the authoritative part; coordinates are display/routing hints.
type Address struct {
	text  string
	point *GeoPoint
}

// NewAddress validates and creates an Address.
// The text must be non-empty; the point is optional and may be nil.
func NewAddress(text string, point *GeoPoint) (Address, error) {
	if text == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	return Address{text: text, point: point}, nil
}

// Text returns the street address text.
func (a Address) Text() string {
	return a.text
}

// Point returns the geocoded coordinates, or nil if the address has none.
func (a Address) Point() *GeoPoint {
	return a.point
}

// String implements fmt.Stringer for logging.
func (a Address) String() string {
	if a.point != nil {
		return fmt.Sprintf("%s (%.6f, %.6f)", a.text, a.point.lat, a.point.lon)
	}
	return a.text
}

// IsEqual compares two addresses by text and coordinates.
func (a Address) IsEqual(other Address) bool {
	if a.text != other.text {
		return false
	}
	if (a.point == nil) != (other.point == nil) {
		return false
	}
	return a.point == nil || *a.point == *other.point
}

// Validate checks if the Address is properly constructed.
func (a Address) Validate() error {
	if a.text == "" {
		return ErrAddressIsNotConstructed
	}
	return nil
}
