package testutil

import (
	"os"
	"testing"
)

const envUseCI = "SHA256_CI"

// SkipCI skips slow round-trip tests unless the CI environment flag is set.
func SkipCI(t *testing.T) {
	if os.Getenv(envUseCI) == "" {
		t.Skip("Skip SHA256 CI")
	}
}
