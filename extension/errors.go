// errors.go defines the sentinel errors shared by the registry, the options
// schema, and the host's exposure table.
//
// Design: plain sentinels wrapped with %w at the failure site, so callers
// test with errors.Is while messages still name the offending extension,
// option, or exposure. Structured errors that carry attribution (activation,
// phase, pipeline stage) live in the host package, which is where that
// context exists.

package extension

import "errors"

var (
	// ErrDuplicateExtension is returned when a name is registered with a
	// different factory than before. Re-registering the identical factory
	// is a no-op, tolerating repeated module loading.
	ErrDuplicateExtension = errors.New("extension already registered")

	// ErrNotFound is returned when looking up an unregistered extension
	// name, or resolving an exposure name nothing has claimed.
	ErrNotFound = errors.New("extension not found")

	// ErrUnknownOption is returned when reading or writing an option key
	// the schema never declared. Unknown keys are a configuration error,
	// never a silent no-op.
	ErrUnknownOption = errors.New("unknown option")

	// ErrDuplicateOption is returned when a schema key is declared twice.
	ErrDuplicateOption = errors.New("option already declared")

	// ErrSchemaFrozen is returned when declaring options on a schema after
	// it has been registered. Schemas are immutable once in use.
	ErrSchemaFrozen = errors.New("options schema is frozen")

	// ErrNameCollision is returned when an activation exposes an operation
	// name already claimed within the same exposure namespace. The earlier
	// exposure stays in place; silently overwriting it would make dispatch
	// ambiguous.
	ErrNameCollision = errors.New("exposure name already in use")
)
