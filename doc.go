// Package carsample demonstrates explicit composition of a contract with
// several implementations, each carrying metadata, injected into a host as
// collections of lazy handles.
//
// There is no reflection-based container and no type scanning: every
// implementation is registered by hand in one place, and the host is built
// through a generated builder that validates its arguments.
//
// See subpackages:
//   - di: catalog, lazy handles, metadata registry
//   - cmd/hostgen: builder generator for host types
//   - examples/cars: the car sample (contract, parts, host, display)
//   - examples/cars/main: runnable composition root
//   - config, logger: application configuration (viper) and logging (zerolog)
package carsample
