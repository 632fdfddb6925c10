package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"mazegen/internal/maze"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mazeEnvKeys = []string{
	"MAZE_ROWS", "MAZE_COLS", "MAZE_CELL_PX", "MAZE_MARGIN", "MAZE_SCALE",
	"MAZE_RATE", "MAZE_SEED", "MAZE_LOG_LEVEL", "MAZE_ADDR",
}

// clearEnv unsets every MAZE_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range mazeEnvKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Rows)
	assert.Equal(t, 25, cfg.Cols)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-rows", "7", "-cols", "9", "-seed", "-3", "-rate", "0", "-log-level", "debug"}))

	assert.Equal(t, 7, cfg.Rows)
	assert.Equal(t, 9, cfg.Cols)
	assert.Equal(t, int64(-3), cfg.Seed)
	assert.Equal(t, 0, cfg.Rate)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvFromFileAndEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "maze.env")
	require.NoError(t, os.WriteFile(path, []byte("MAZE_ROWS=11\nMAZE_COLS=13\nMAZE_SEED=99\n"), 0o600))
	t.Setenv("MAZE_COLS", "17")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv(path))
	assert.Equal(t, 11, cfg.Rows)
	assert.Equal(t, 17, cfg.Cols, "process environment wins over the file")
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 30, cfg.Rate)
}

func TestLoadEnvMissingFileIsFine(t *testing.T) {
	clearEnv(t)
	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadEnvRejectsBadInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_RATE", "fast")
	cfg := NewConfig()
	err := cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAZE_RATE")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero rows":     func(c *Config) { c.Rows = 0 },
		"negative cols": func(c *Config) { c.Cols = -2 },
		"tiny cells":    func(c *Config) { c.CellPx = 2 },
		"no scale":      func(c *Config) { c.Scale = 0 },
		"negative rate": func(c *Config) { c.Rate = -1 },
		"bad level":     func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := NewConfig()
	cfg.Rows = 0
	assert.ErrorIs(t, cfg.Validate(), maze.ErrInvalidDimensions)
}

func TestLogger(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "warn"
	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.Equal(t, logrus.Fields{"rows": 20, "cols": 25, "seed": int64(42)}, cfg.Fields())
}
