package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersion(t *testing.T) {
	settings := buildSettings{
		mainVersion: "v1.2.3",
		revision:    "abc123",
		time:        "2026-01-02T03:04:05Z",
		modified:    true,
	}

	t.Run("falls back to build info", func(t *testing.T) {
		out := buildVersion("dev", "none", "unknown", settings)
		assert.Equal(t, "v1.2.3", out.Version)
		assert.Equal(t, "abc123-dirty", out.Commit)
		assert.Equal(t, "2026-01-02T03:04:05Z", out.Date)
		assert.Equal(t, runtime.Version(), out.Go)
		assert.Equal(t, runtime.GOOS, out.OS)
		assert.Equal(t, runtime.GOARCH, out.Arch)
	})

	t.Run("ldflags win", func(t *testing.T) {
		out := buildVersion("0.4.0", "deadbeef", "2026-03-01", settings)
		assert.Equal(t, "0.4.0", out.Version)
		assert.Equal(t, "deadbeef", out.Commit)
		assert.Equal(t, "2026-03-01", out.Date)
	})

	t.Run("no build info", func(t *testing.T) {
		out := buildVersion("dev", "none", "unknown", buildSettings{})
		assert.Equal(t, "dev", out.Version)
		assert.Equal(t, "none", out.Commit)
		assert.Equal(t, "unknown", out.Date)
	})
}

func TestDisplayVersion(t *testing.T) {
	assert.Equal(t, "v1.0.0", displayVersion("1.0.0"))
	assert.Equal(t, "v1.0.0", displayVersion("v1.0.0"))
	assert.Equal(t, "dev", displayVersion("dev"))
	assert.Equal(t, "(devel)", displayVersion("(devel)"))
	assert.Equal(t, "", displayVersion(""))
}
