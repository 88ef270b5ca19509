package pkguid

import (
	"fmt"
	"strings"

	"github.com/shandysiswandi/parserconfig/internal/pkg/pkgerror"
)

// Generator names accepted by New.
const (
	KindUUID      = "uuid"
	KindSnowflake = "snowflake"
)

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// New returns the generator registered under kind. An empty kind selects UUIDs.
func New(kind string) (StringID, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindUUID:
		return NewUUID(), nil
	case KindSnowflake:
		return NewSnowflake()
	default:
		return nil, pkgerror.NewValidation(nil, fmt.Sprintf("unknown id generator %q", kind), pkgerror.CodeInvalidInput)
	}
}
