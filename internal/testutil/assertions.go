package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that every substring appears on one line of the log.
// It keeps tests independent of attribute order.
func AssertLogged(t *testing.T, logs string, substrings ...string) {
	t.Helper()
	for _, line := range strings.Split(logs, "\n") {
		if containsAll(line, substrings) {
			return
		}
	}
	require.Failf(t, "log line not found", "no log line contains all of %q\n%s", substrings, logs)
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
