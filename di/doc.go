// Package di provides small, explicit composition helpers for Go.
//
// There is no reflection-based scanning and no container graph. A composition
// root registers every implementation of a contract by hand and resolves
// collections of lazy handles from it:
//
//   - Catalog[C, M]: the parts exported under contract C, in export order,
//     each with metadata M computed once at export time.
//   - Lazy[T, M]: a deferred value plus eager metadata. Reading metadata never
//     constructs; the value is built on first use and memoized.
//   - Registry / MapRegistry: metadata values keyed by (part, field), read with
//     Field[V] which falls back to a default when a key is absent.
//
// Typical wiring:
//
//	reg := di.NewMapRegistry().
//		Provide("CarBMW", "Name", "BMW").
//		Provide("CarBMW", "Price", uint(51000))
//
//	cat := di.NewCatalog[CarContract, CarMetadata]("CarContract", metadataFrom(reg))
//	cat.MustExport("CarBMW", func() CarContract { return NewCarBMW(os.Stdout) })
//
//	for _, h := range cat.Many() {
//		fmt.Println(h.Metadata().Name) // no construction
//		fmt.Println(h.Value().DoSomething())
//	}
//
// Errors are typed (DuplicateExportError, MissingExportError, NilFactoryError,
// MetadataTypeError) so tests can assert on them with errors.As.
//
// Import
//
//	"github.com/sghaida/carsample/di"
package di
