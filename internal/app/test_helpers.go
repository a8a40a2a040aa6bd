package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/osmforge/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. Logs go to the
// returned buffer at debug level; set OSMFORGE_TEST_LOGS=true to print them.
func SetupAppTest(t *testing.T, cfg *Config, opts ...Option) (*App, *testutil.SafeBuffer) {
	t.Helper()

	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	testApp := NewApp(logBuffer, cfg, opts...)

	t.Cleanup(func() {
		if os.Getenv("OSMFORGE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
