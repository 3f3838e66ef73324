// Command hostgen generates a builder for a host type whose constructor takes
// injected collections or other explicit arguments.
//
// You write a small spec next to the host:
//
//	package: cars
//	facade: CarHostBuilder
//	implType: CarHost
//	constructor: NewCarHost
//	imports:
//	  - path: io
//	params:
//	  - { name: Out,       field: out,       type: io.Writer }
//	  - { name: CarPartsA, field: carPartsA, type: "[]*CarPart" }
//	  - { name: CarPartsB, field: carPartsB, type: "[]*CarPart" }
//
// and a go:generate directive in the host's file:
//
//	//go:generate go run ../../cmd/hostgen -spec ./specs/host.inject.yaml -out ./host_di.gen.go
//
// The constructor is looked up in the output directory. Generation fails when
// it is missing, declared more than once, or when its parameter count differs
// from the number of params in the spec. Params are passed to the constructor
// in spec order.
//
// Generated API:
//
//   - New<Facade>() *<Facade>
//   - Inject<Name>(dep <Type>) *<Facade>   // one per param
//   - Build() (*<ImplType>, error)          // fails until every param is injected
//   - MustBuild() *<ImplType>
//
// If the constructor returns (*T, error), Build returns its error unchanged.
//
// Output is gofmt'd and written atomically (temp file + rename).
package main
