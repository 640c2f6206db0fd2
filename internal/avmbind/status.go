// Package avmbind implements the binding engine: resolving a property
// access on a receiver to a get/set/invoke/construct outcome (§4.1).
//
// Grounded on the teacher's internal/interp/types/function_registry.go
// overload-list-then-pick pattern for name resolution, and
// internal/interp/runtime/errors.go's structured-error style for the
// throwing half of the contract (coercion/native-invocation failures
// still propagate as Go errors; BindStatus itself never does).
package avmbind

// BindStatus is the non-throwing outcome of a property operation.
type BindStatus int

const (
	SUCCESS BindStatus = iota
	SOFT_SUCCESS
	NOT_FOUND
	AMBIGUOUS
	FAILED_READONLY
	FAILED_NOTFUNCTION
	FAILED_NOTCONSTRUCTOR
	FAILED_WRITEONLY
	FAILED_TYPEMISMATCH
	FAILED_ARITY
)

func (s BindStatus) String() string {
	switch s {
	case SUCCESS:
		return "SUCCESS"
	case SOFT_SUCCESS:
		return "SOFT_SUCCESS"
	case NOT_FOUND:
		return "NOT_FOUND"
	case AMBIGUOUS:
		return "AMBIGUOUS"
	case FAILED_READONLY:
		return "FAILED_READONLY"
	case FAILED_NOTFUNCTION:
		return "FAILED_NOTFUNCTION"
	case FAILED_NOTCONSTRUCTOR:
		return "FAILED_NOTCONSTRUCTOR"
	case FAILED_WRITEONLY:
		return "FAILED_WRITEONLY"
	case FAILED_TYPEMISMATCH:
		return "FAILED_TYPEMISMATCH"
	case FAILED_ARITY:
		return "FAILED_ARITY"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess reports whether bytecode should treat this as resolved in
// strict mode.
func (s BindStatus) IsSuccess() bool { return s == SUCCESS }

// IsFound reports whether bytecode should treat this as resolved in
// lenient mode (SOFT_SUCCESS counts as found there, per §4.1).
func (s BindStatus) IsFound(strict bool) bool {
	if s == SUCCESS {
		return true
	}
	if s == SOFT_SUCCESS {
		return !strict
	}
	return false
}
