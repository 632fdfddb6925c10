package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"mazegen/internal/maze"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config represents the parameters shared by the maze commands.
type Config struct {
	Rows     int
	Cols     int
	CellPx   int
	Margin   int
	Scale    int
	Rate     int
	Seed     int64
	LogLevel string
	Addr     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     20,
		Cols:     25,
		CellPx:   20,
		Margin:   50,
		Scale:    1,
		Rate:     30,
		Seed:     42,
		LogLevel: "info",
		Addr:     ":8080",
	}
}

// LoadEnv overrides defaults from MAZE_* variables. Values come from the
// process environment first, then from the given dotenv files (".env" when
// none are named). A missing dotenv file is not an error.
func (c *Config) LoadEnv(files ...string) error {
	fileVals, err := godotenv.Read(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read env file: %w", err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"MAZE_ROWS", &c.Rows},
		{"MAZE_COLS", &c.Cols},
		{"MAZE_CELL_PX", &c.CellPx},
		{"MAZE_MARGIN", &c.Margin},
		{"MAZE_SCALE", &c.Scale},
		{"MAZE_RATE", &c.Rate},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("environment variable %s must be an integer: %w", e.key, err)
		}
		*e.dst = parsed
	}
	if v, ok := lookup("MAZE_SEED"); ok && v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("environment variable MAZE_SEED must be an integer: %w", err)
		}
		c.Seed = parsed
	}
	if v, ok := lookup("MAZE_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("MAZE_ADDR"); ok && v != "" {
		c.Addr = v
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "maze rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "maze columns")
	fs.IntVar(&c.CellPx, "cell", c.CellPx, "cell size in pixels")
	fs.IntVar(&c.Margin, "margin", c.Margin, "margin around the maze in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Rate, "rate", c.Rate, "checkpoints shown per second (0 = unpaced)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for generation")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address for the stream server")
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return &maze.ConfigError{Rows: c.Rows, Cols: c.Cols}
	}
	if c.CellPx < 3 {
		return fmt.Errorf("cell size %d too small (minimum 3)", c.CellPx)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin %d must not be negative", c.Margin)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale %d must be at least 1", c.Scale)
	}
	if c.Rate < 0 {
		return fmt.Errorf("rate %d must not be negative", c.Rate)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Logger builds the command logger at the configured level.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, nil
}

// Fields returns the maze parameters as log fields.
func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{"rows": c.Rows, "cols": c.Cols, "seed": c.Seed}
}
