package loader

import (
	"errors"
	"fmt"
)

// Kind classifies why a quiz file could not be loaded.
type Kind int

const (
	// KindIO covers read failures that are neither missing files nor permissions.
	KindIO Kind = iota
	// KindNotFound means the file does not exist.
	KindNotFound
	// KindPermission means the file exists but cannot be read.
	KindPermission
	// KindFormat means the document could not be parsed.
	KindFormat
	// KindInvalid means the document parsed but does not describe a valid quiz.
	KindInvalid
)

// Sentinels matched by LoadError through errors.Is.
var (
	ErrNotFound   = errors.New("quiz file not found")
	ErrPermission = errors.New("quiz file not readable")
	ErrFormat     = errors.New("quiz file is not valid YAML or JSON")
	ErrInvalid    = errors.New("quiz file is not a valid quiz")
)

// LoadError is the single error kind returned by Load.
type LoadError struct {
	Path string
	Kind Kind
	Err  error
}

// Error returns a readable message naming the file and the cause.
func (err *LoadError) Error() string {
	switch err.Kind {
	case KindNotFound:
		return fmt.Sprintf("file %s not found", err.Path)
	case KindPermission:
		return fmt.Sprintf("could not load data from %s: permission denied", err.Path)
	case KindFormat:
		return fmt.Sprintf("could not load data from %s: %v", err.Path, err.Err)
	case KindInvalid:
		return fmt.Sprintf("could not load quiz from %s: %v", err.Path, err.Err)
	default:
		return fmt.Sprintf("could not read %s: %v", err.Path, err.Err)
	}
}

// Unwrap exposes the underlying cause.
func (err *LoadError) Unwrap() error { return err.Err }

// Is matches the sentinel for the error kind.
func (err *LoadError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return err.Kind == KindNotFound
	case ErrPermission:
		return err.Kind == KindPermission
	case ErrFormat:
		return err.Kind == KindFormat
	case ErrInvalid:
		return err.Kind == KindInvalid
	}
	return false
}
