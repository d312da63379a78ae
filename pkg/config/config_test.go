package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 8081, cfg.GRPCPort)
	assert.Equal(t, DriverFS, cfg.StoreDriver)
	assert.Equal(t, "kikuchan_cart", cfg.StoreKey)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", " Memory ")

	cfg, err := LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
}

func TestLoadValidation(t *testing.T) {
	t.Run("postgres without url -> error", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")
		_, err := LoadFrom("")
		assert.Error(t, err)
	})

	t.Run("unknown driver -> error", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "redis")
		_, err := LoadFrom("")
		assert.Error(t, err)
	})

	t.Run("bad port -> error", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "eighty")
		_, err := LoadFrom("")
		assert.Error(t, err)
	})
}

func TestLoadDotenv(t *testing.T) {
	t.Setenv("STORE_KEY", "")
	os.Unsetenv("STORE_KEY")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_KEY=from_dotenv\n"), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", cfg.StoreKey)
}
