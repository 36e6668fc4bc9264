package platform

import (
	"strings"

	"github.com/google/uuid"
)

// newID builds a prefixed resource id, e.g. "agent_3f2a9c01b4d7".
func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
