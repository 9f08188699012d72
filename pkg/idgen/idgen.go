// Package idgen generates human-readable record identifiers of the form <prefix>-<unix-ms>-<suffix>.
package idgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLength = 9

// Generator produces identifiers using the wall clock and a random UUID suffix.
type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewID returns e.g. B-1717228800000-3f9a1c2b7.
func (g *Generator) NewID(prefix string) string {
	return format(prefix, g.now(), randomSuffix())
}

// format builds an identifier from its parts.
func format(prefix string, at time.Time, suffix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, at.UnixMilli(), suffix)
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
}
