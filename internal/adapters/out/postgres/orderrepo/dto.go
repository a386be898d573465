// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their string names so raw dashboard queries stay
// readable. The Version column backs the optimistic concurrency check.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode string    `gorm:"type:varchar(12);uniqueIndex"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`

	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	DriverName   *string
	DriverPhone  *string
	DriverRating *float64

	Pickup   AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	PackageCategory     string `gorm:"type:varchar(16)"`
	PackageDescription  string
	IsFragile           bool
	HasInsurance        bool
	RecipientName       string
	RecipientPhone      string `gorm:"type:varchar(16)"`
	SpecialInstructions string

	Status        string `gorm:"type:varchar(16);index"`
	PaymentMethod string `gorm:"type:varchar(16)"`
	PaymentTerm   string `gorm:"type:varchar(16)"`
	PaymentStatus string `gorm:"type:varchar(16)"`
	Price         int
	CancelReason  string

	CreatedAt   time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	CompletedAt *time.Time

	CustomerFeedback FeedbackDTO `gorm:"embedded;embeddedPrefix:customer_feedback_"`
	DriverFeedback   FeedbackDTO `gorm:"embedded;embeddedPrefix:driver_feedback_"`

	Version int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded address with optional coordinates.
type AddressDTO struct {
	Text string
	Lat  *float64 `gorm:"type:double precision"`
	Lon  *float64 `gorm:"type:double precision"`
}

// FeedbackDTO represents embedded feedback columns; Rating is nil until the
// feedback is recorded.
type FeedbackDTO struct {
	Rating  *int
	Comment *string
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		TrackingCode:        aggregate.TrackingCode().String(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		Pickup:              addressToDTO(aggregate.Route().Pickup()),
		Delivery:            addressToDTO(aggregate.Route().Delivery()),
		PackageCategory:     aggregate.Package().Category().String(),
		PackageDescription:  aggregate.Package().Description(),
		IsFragile:           aggregate.Package().IsFragile(),
		HasInsurance:        aggregate.Package().HasInsurance(),
		RecipientName:       aggregate.Recipient().Name(),
		RecipientPhone:      aggregate.Recipient().Phone().String(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		Status:              aggregate.Status().String(),
		PaymentMethod:       aggregate.PaymentMethod().String(),
		PaymentTerm:         aggregate.PaymentTerm().String(),
		PaymentStatus:       aggregate.PaymentStatus().String(),
		Price:               aggregate.Price(),
		CancelReason:        aggregate.CancelReason(),
		CreatedAt:           aggregate.CreatedAt(),
		AssignedAt:          aggregate.AssignedAt(),
		PickedUpAt:          aggregate.PickedUpAt(),
		InTransitAt:         aggregate.InTransitAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		CancelledAt:         aggregate.CancelledAt(),
		CompletedAt:         aggregate.CompletedAt(),
		CustomerFeedback:    feedbackToDTO(aggregate.CustomerFeedback()),
		DriverFeedback:      feedbackToDTO(aggregate.DriverFeedback()),
		Version:             aggregate.Version(),
	}

	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		dto.DriverID = &raw
	}
	if snapshot := aggregate.DriverSnapshot(); snapshot != nil {
		name := snapshot.Name()
		phone := snapshot.Phone().String()
		rating := snapshot.Rating()
		dto.DriverName = &name
		dto.DriverPhone = &phone
		dto.DriverRating = &rating
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate through RestoreOrder so the restored
// order carries the same invariants as a freshly built one.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingCode, err := kernel.TrackingCodeFromString(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	snapshot, err := snapshotFromDTO(dto)
	if err != nil {
		return nil, err
	}

	route, err := routeFromDTO(dto)
	if err != nil {
		return nil, err
	}

	pkg, err := packageFromDTO(dto)
	if err != nil {
		return nil, err
	}

	recipient, err := recipientFromDTO(dto)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentTerm, err := order.PaymentTermFromString(dto.PaymentTerm)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	customerFeedback, err := feedbackFromDTO(dto.CustomerFeedback)
	if err != nil {
		return nil, err
	}

	driverFeedback, err := feedbackFromDTO(dto.DriverFeedback)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                  id,
		TrackingCode:        trackingCode,
		CustomerID:          customerID,
		DriverID:            driverID,
		Driver:              snapshot,
		Route:               route,
		Package:             pkg,
		Recipient:           recipient,
		SpecialInstructions: dto.SpecialInstructions,
		Status:              status,
		PaymentMethod:       paymentMethod,
		PaymentTerm:         paymentTerm,
		PaymentStatus:       paymentStatus,
		Price:               dto.Price,
		CancelReason:        dto.CancelReason,
		CreatedAt:           dto.CreatedAt,
		AssignedAt:          dto.AssignedAt,
		PickedUpAt:          dto.PickedUpAt,
		InTransitAt:         dto.InTransitAt,
		DeliveredAt:         dto.DeliveredAt,
		CancelledAt:         dto.CancelledAt,
		CompletedAt:         dto.CompletedAt,
		CustomerFeedback:    customerFeedback,
		DriverFeedback:      driverFeedback,
		Version:             dto.Version,
	})
}

func addressToDTO(address kernel.Address) AddressDTO {
	dto := AddressDTO{Text: address.Text()}
	if point := address.Point(); point != nil {
		lat := point.Lat()
		lon := point.Lon()
		dto.Lat = &lat
		dto.Lon = &lon
	}
	return dto
}

func addressFromDTO(dto AddressDTO) (kernel.Address, error) {
	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lon != nil {
		p, err := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if err != nil {
			return kernel.Address{}, err
		}
		point = &p
	}
	return kernel.NewAddress(dto.Text, point)
}

func routeFromDTO(dto OrderDTO) (order.Route, error) {
	pickup, err := addressFromDTO(dto.Pickup)
	if err != nil {
		return order.Route{}, err
	}

	delivery, err := addressFromDTO(dto.Delivery)
	if err != nil {
		return order.Route{}, err
	}

	return order.NewRoute(pickup, delivery)
}

func packageFromDTO(dto OrderDTO) (order.Package, error) {
	category, err := order.CategoryFromString(dto.PackageCategory)
	if err != nil {
		return order.Package{}, err
	}

	return order.NewPackage(category, dto.PackageDescription, dto.IsFragile, dto.HasInsurance)
}

func recipientFromDTO(dto OrderDTO) (order.Recipient, error) {
	phone, err := kernel.NewPhone(dto.RecipientPhone)
	if err != nil {
		return order.Recipient{}, err
	}

	return order.NewRecipient(dto.RecipientName, phone)
}

func snapshotFromDTO(dto OrderDTO) (*order.DriverSnapshot, error) {
	if dto.DriverName == nil || dto.DriverPhone == nil || dto.DriverRating == nil {
		return nil, nil //nolint:nilnil // no snapshot persisted
	}

	phone, err := kernel.NewPhone(*dto.DriverPhone)
	if err != nil {
		return nil, err
	}

	snapshot, err := order.NewDriverSnapshot(*dto.DriverName, phone, *dto.DriverRating)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func feedbackToDTO(feedback *order.Feedback) FeedbackDTO {
	if feedback == nil {
		return FeedbackDTO{}
	}

	rating := feedback.Rating()
	comment := feedback.Comment()
	return FeedbackDTO{Rating: &rating, Comment: &comment}
}

func feedbackFromDTO(dto FeedbackDTO) (*order.Feedback, error) {
	if dto.Rating == nil {
		return nil, nil //nolint:nilnil // no feedback persisted
	}

	comment := ""
	if dto.Comment != nil {
		comment = *dto.Comment
	}

	feedback, err := order.NewFeedback(*dto.Rating, comment)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}
