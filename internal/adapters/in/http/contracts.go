package http

import (
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/timeline"
)

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Address carries a street address with optional geocoded coordinates.
type Address struct {
	Text string   `json:"text"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
}

// Package describes the parcel being shipped.
type Package struct {
	Category     string `json:"category"`
	Description  string `json:"description,omitempty"`
	IsFragile    bool   `json:"isFragile"`
	HasInsurance bool   `json:"hasInsurance"`
}

// Recipient identifies who receives the parcel.
type Recipient struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	CustomerID          string    `json:"customerId"`
	Pickup              Address   `json:"pickup"`
	Delivery            Address   `json:"delivery"`
	DistanceKm          float64   `json:"distanceKm"`
	Package             Package   `json:"package"`
	Recipient           Recipient `json:"recipient"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
	PaymentMethod       string    `json:"paymentMethod"`
	PaymentTerm         string    `json:"paymentTerm"`
}

// PriceBreakdown itemizes the quoted delivery cost.
type PriceBreakdown struct {
	BaseFare          int `json:"baseFare"`
	DistanceFee       int `json:"distanceFee"`
	FragileCharge     int `json:"fragileCharge"`
	InsuranceCharge   int `json:"insuranceCharge"`
	AfterHoursCharge  int `json:"afterHoursCharge"`
	WeekendCharge     int `json:"weekendCharge"`
	Total             int `json:"total"`
	DriverEarnings    int `json:"driverEarnings"`
	CompanyCommission int `json:"companyCommission"`
}

// OrderCreated is the response body after a successful order placement.
type OrderCreated struct {
	OrderID      string         `json:"orderId"`
	TrackingCode string         `json:"trackingCode"`
	Breakdown    PriceBreakdown `json:"breakdown"`
}

// AssignDriver is the request body for manually assigning a driver.
type AssignDriver struct {
	DriverID string `json:"driverId"`
}

// UpdateStatus is the request body for advancing an order's delivery status.
type UpdateStatus struct {
	Status string `json:"status"`
}

// CancelOrder is the request body for cancelling an order.
type CancelOrder struct {
	Reason string `json:"reason"`
}

// RecordPayment is the request body for settling the payment axis.
type RecordPayment struct {
	Status string `json:"status"`
}

// RecordFeedback is the request body for post-delivery feedback.
type RecordFeedback struct {
	Role    string `json:"role"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// NewDriver is the request body for registering a driver.
type NewDriver struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// DriverCreated is the response returned after a driver registration.
type DriverCreated struct {
	DriverID string `json:"driverId"`
}

// Driver is the snapshot of the assigned driver shown to customers.
type Driver struct {
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Rating float64 `json:"rating"`
}

// TimelineEntry is one row of the delivery progress view. Entries for stages
// the order has not reached carry an estimate and an "Est." description prefix.
type TimelineEntry struct {
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Estimated   bool      `json:"estimated"`
	Completed   bool      `json:"completed"`
}

// Order is the full order view: current state plus projected timeline.
type Order struct {
	OrderID       string          `json:"orderId"`
	TrackingCode  string          `json:"trackingCode"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Price         int             `json:"price"`
	Driver        *Driver         `json:"driver,omitempty"`
	Timeline      []TimelineEntry `json:"timeline"`
}

// ActiveOrder is one row of the dispatch dashboard listing.
type ActiveOrder struct {
	OrderID       string    `json:"orderId"`
	TrackingCode  string    `json:"trackingCode"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	Price         int       `json:"price"`
	CreatedAt     time.Time `json:"createdAt"`
}

func orderCreatedFromResult(result commands.CreateOrderResult) OrderCreated {
	return OrderCreated{
		OrderID:      result.OrderID.String(),
		TrackingCode: result.TrackingCode.String(),
		Breakdown: PriceBreakdown{
			BaseFare:          result.Breakdown.BaseFare(),
			DistanceFee:       result.Breakdown.DistanceFee(),
			FragileCharge:     result.Breakdown.FragileCharge(),
			InsuranceCharge:   result.Breakdown.InsuranceCharge(),
			AfterHoursCharge:  result.Breakdown.AfterHoursCharge(),
			WeekendCharge:     result.Breakdown.WeekendCharge(),
			Total:             result.Breakdown.Total(),
			DriverEarnings:    result.Breakdown.DriverEarnings(),
			CompanyCommission: result.Breakdown.CompanyCommission(),
		},
	}
}

func orderFromResponse(response queries.GetTrackedOrderQueryResponse) Order {
	view := Order{
		OrderID:       response.OrderID.String(),
		TrackingCode:  response.TrackingCode.String(),
		Status:        response.Status.String(),
		PaymentStatus: response.PaymentStatus.String(),
		Price:         response.Price,
		Timeline:      timelineFromEntries(response.Timeline),
	}
	if response.Driver != nil {
		view.Driver = &Driver{
			Name:   response.Driver.Name(),
			Phone:  response.Driver.Phone().String(),
			Rating: response.Driver.Rating(),
		}
	}
	return view
}

func timelineFromEntries(entries []timeline.Entry) []TimelineEntry {
	view := make([]TimelineEntry, len(entries))
	for i, entry := range entries {
		description := entry.Description
		if entry.Estimated {
			description = "Est. " + description
		}
		view[i] = TimelineEntry{
			Status:      entry.Status.String(),
			Description: description,
			Timestamp:   entry.Timestamp,
			Estimated:   entry.Estimated,
			Completed:   entry.Completed,
		}
	}
	return view
}

func activeOrdersFromResponses(responses []queries.GetActiveOrdersQueryResponse) []ActiveOrder {
	view := make([]ActiveOrder, len(responses))
	for i, row := range responses {
		view[i] = ActiveOrder{
			OrderID:       row.ID.String(),
			TrackingCode:  row.TrackingCode,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			Price:         row.Price,
			CreatedAt:     row.CreatedAt,
		}
	}
	return view
}
