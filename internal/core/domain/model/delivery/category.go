package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// PackageCategory represents the size class of the package.
// Each category carries a fixed price multiplier. The category is chosen
// at creation and never changes.
type PackageCategory int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown PackageCategory = iota

	// CategoryDocument is an envelope or paperwork shipment.
	CategoryDocument

	// CategorySmall is a small parcel.
	CategorySmall

	// CategoryMedium is a medium parcel.
	CategoryMedium

	// CategoryLarge is a large or bulky parcel.
	CategoryLarge
)

func getCategoryStrings() map[PackageCategory]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[PackageCategory]string{
		CategoryDocument: "document",
		CategorySmall:    "small",
		CategoryMedium:   "medium",
		CategoryLarge:    "large",
	}
}

// Validate checks if the PackageCategory value is valid.
func (c PackageCategory) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("packageCategory", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the lowercase category name used on the wire and in storage.
func (c PackageCategory) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// CategoryFromString parses a category name as produced by String.
func CategoryFromString(raw string) (PackageCategory, error) {
	for category, name := range getCategoryStrings() {
		if name == raw {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"packageCategory", fmt.Errorf("%q is not a valid category", raw))
}

// Multiplier returns the category's price multiplier.
func (c PackageCategory) Multiplier() float64 {
	switch c {
	case CategoryDocument:
		return 0.5
	case CategorySmall:
		return 1.0
	case CategoryMedium:
		return 1.5
	case CategoryLarge:
		return 2.5
	default:
		return 0
	}
}
