package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertUnitResolved checks the log output within a HarnessResult to confirm
// that a build unit was resolved.
func AssertUnitResolved(t *testing.T, result *HarnessResult, unit string) {
	t.Helper()

	expected := fmt.Sprintf("unit=%s", unit)
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "Resolved build unit.") && strings.Contains(line, expected) {
			return
		}
	}
	require.Fail(t, "build unit was not resolved", "expected a resolution log line for unit %q", unit)
}
