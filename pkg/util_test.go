package pkg

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToString(t *testing.T) {
	assert.Equal(t, "hevy", BytesToString([]byte("hevy")))
	assert.Equal(t, "", BytesToString(nil))
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()

	exists, err := PathExists(dir, true)
	require.NoError(t, err)
	assert.True(t, exists)

	// a dir is not a file
	exists, err = PathExists(dir, false)
	require.NoError(t, err)
	assert.False(t, exists)

	filePath := filepath.Join(dir, "workout_data.csv")
	require.NoError(t, os.WriteFile(filePath, []byte("title"), 0o600))

	exists, err = PathExists(filePath, false)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = PathExists(filepath.Join(dir, "nope.csv"), false)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReadUserIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/overview", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	assert.Equal(t, "10.0.0.7", ReadUserIP(req))

	req.Header.Set("X-Forwarded-For", "100.100.10.5")
	assert.Equal(t, "100.100.10.5", ReadUserIP(req))

	req.Header.Set("X-Real-Ip", "100.100.10.6")
	assert.Equal(t, "100.100.10.6", ReadUserIP(req))
}
