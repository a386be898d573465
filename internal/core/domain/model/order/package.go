package order

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// Category classifies the package contents for pricing and handling.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryDocuments
	CategoryElectronics
	CategoryClothing
	CategoryFood
	CategoryFurniture
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:     "unknown",
		CategoryDocuments:   "documents",
		CategoryElectronics: "electronics",
		CategoryClothing:    "clothing",
		CategoryFood:        "food",
		CategoryFurniture:   "furniture",
		CategoryOther:       "other",
	}
}

// CategoryFromString parses a category from its wire spelling.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getCategoryStrings() {
		if str == s && category != CategoryUnknown {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("packageType",
		fmt.Errorf("%q is not a valid package type", s))
}

// String returns the wire spelling of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Category value is one of the defined categories.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok || c == CategoryUnknown {
		return errs.NewValueIsInvalidErrorWithCause("packageType",
			fmt.Errorf("%d is not a valid package type", c))
	}
	return nil
}

// Package describes what is being delivered: category, free-form
// description and the risk flags that drive pricing surcharges.
type Package struct {
	category    Category
	description string
	isFragile   bool
	hasInsured  bool
}

// NewPackage validates and creates a package descriptor.
// The description is optional.
func NewPackage(category Category, description string, isFragile, hasInsurance bool) (Package, error) {
	if err := category.Validate(); err != nil {
		return Package{}, err
	}
	return Package{
		category:    category,
		description: description,
		isFragile:   isFragile,
		hasInsured:  hasInsurance,
	}, nil
}

// Category returns the package category.
func (p Package) Category() Category {
	return p.category
}

// Description returns the free-form description, possibly empty.
func (p Package) Description() string {
	return p.description
}

// IsFragile reports whether the package needs fragile handling.
func (p Package) IsFragile() bool {
	return p.isFragile
}

// HasInsurance reports whether the package is insured.
func (p Package) HasInsurance() bool {
	return p.hasInsured
}

// Validate checks if the Package is properly constructed.
func (p Package) Validate() error {
	return p.category.Validate()
}
