package di

import (
	"errors"
	"strconv"
)

var (
	// ErrEmptyPart is returned when a part is exported without a name.
	ErrEmptyPart = errors.New("di: empty part name")

	// ErrNilCatalog is returned when resolution is attempted without a catalog.
	ErrNilCatalog = errors.New("di: nil catalog")

	// ErrRegistryPanic is returned if a registry implementation panics internally.
	ErrRegistryPanic = errors.New("di: registry panic during Resolve")
)

// DuplicateExportError is returned when a part name is exported twice under the same contract.
type DuplicateExportError struct {
	Contract string
	Part     string
}

// Error implements the error interface.
func (e DuplicateExportError) Error() string {
	// Example: di: duplicate export "CarBMW" for contract "CarContract"
	return "di: duplicate export " + strconv.Quote(e.Part) + " for contract " + strconv.Quote(e.Contract)
}

// MissingExportError is returned when a part is requested that the catalog does not export.
type MissingExportError struct {
	Contract string
	Part     string
}

// Error implements the error interface.
func (e MissingExportError) Error() string {
	// Example: di: contract "CarContract" has no export "CarAudi"
	return "di: contract " + strconv.Quote(e.Contract) + " has no export " + strconv.Quote(e.Part)
}

// NilFactoryError is returned when a part is exported with a nil factory.
type NilFactoryError struct{ Part string }

// Error implements the error interface.
func (e NilFactoryError) Error() string {
	return "di: nil factory for part " + strconv.Quote(e.Part)
}

// MetadataTypeError is returned when a metadata value is registered with a Go type
// other than the one the metadata view expects.
type MetadataTypeError struct {
	Part  string
	Field string

	// Want and Got are the %T renderings of the expected and stored values.
	Want string
	Got  string
}

// Error implements the error interface.
func (e MetadataTypeError) Error() string {
	// Example: di: metadata "CarBMW.Price" has type string, want uint
	return "di: metadata " + strconv.Quote(e.Part+"."+e.Field) + " has type " + e.Got + ", want " + e.Want
}
