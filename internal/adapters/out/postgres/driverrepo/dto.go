// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"github.com/google/uuid"

	"parcel/internal/core/domain/model/driver"
	"parcel/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. Availability is indexed for the dispatch pool query.
type DriverDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Phone       string `gorm:"type:varchar(16)"`
	Rating      float64
	RatingCount int
	Available   bool `gorm:"index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database
// representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone().String(),
		Rating:      aggregate.Rating(),
		RatingCount: aggregate.RatingCount(),
		Available:   aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, phone, dto.Rating, dto.RatingCount, dto.Available)
}
