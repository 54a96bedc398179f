package resolve

import (
	"errors"
	"fmt"
)

// ErrUnsupported is matched by every *UnsupportedError via errors.Is.
var ErrUnsupported = errors.New("unsupported environment")

// Category names which resolver rejected the environment.
type Category uint8

const (
	CategoryStandard Category = iota + 1
	CategoryCompiler
	CategoryCPU
	CategoryOS
)

// String returns the category name used in diagnostics.
func (c Category) String() string {
	switch c {
	case CategoryStandard:
		return "standard"
	case CategoryCompiler:
		return "compiler"
	case CategoryCPU:
		return "cpu"
	case CategoryOS:
		return "os"
	default:
		return "unknown"
	}
}

// UnsupportedError is the single failure mode of resolution. It is fatal: the
// build unit has no record.
type UnsupportedError struct {
	Category Category
	Detail   string
}

// Error implements the error interface for UnsupportedError.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s (%s): %s", ErrUnsupported, e.Category, e.Detail)
}

// Is makes errors.Is(err, ErrUnsupported) hold for every UnsupportedError.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

func unsupported(c Category, format string, args ...any) error {
	return &UnsupportedError{Category: c, Detail: fmt.Sprintf(format, args...)}
}

// CategoryOf returns the category of the first *UnsupportedError in err's
// chain, or zero when there is none.
func CategoryOf(err error) Category {
	var ue *UnsupportedError
	if errors.As(err, &ue) {
		return ue.Category
	}
	return 0
}
