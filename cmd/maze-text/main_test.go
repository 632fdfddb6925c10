package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"mazegen/internal/config"
	"mazegen/internal/maze"
	"mazegen/internal/render"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Rows, cfg.Cols, cfg.Seed, cfg.Rate = 3, 4, 11, 0
	return cfg
}

func TestPlayFinalOnly(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, play(context.Background(), &out, testConfig(), true, logger.WithField("test", true)))

	want, err := maze.Generate(3, 4, 11)
	require.NoError(t, err)
	assert.Equal(t, render.TextGrid(want), out.String())
	assert.Equal(t, "generation complete", hook.LastEntry().Message)
}

func TestPlayRedrawsEveryCheckpoint(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, play(context.Background(), &out, testConfig(), false, logger.WithField("test", true)))

	assert.Equal(t, 12+1, strings.Count(out.String(), clearScreen))
	assert.Contains(t, out.String(), "step 12/12")
}

func TestPlayInterruptedPrintsPartialMaze(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	require.NoError(t, play(ctx, &out, testConfig(), true, logger.WithField("test", true)))

	assert.Equal(t, "generation aborted", hook.LastEntry().Message)
	assert.Contains(t, out.String(), ".")
}

// failingWriter accepts ok writes and rejects the rest.
type failingWriter struct{ ok int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, errors.New("terminal gone")
	}
	w.ok--
	return len(p), nil
}

func TestPlayReportsFinalClearFailure(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	// Twelve checkpoint frames succeed; the clear before the final maze fails.
	err := play(context.Background(), &failingWriter{ok: 12}, testConfig(), false, logger.WithField("test", true))
	assert.EqualError(t, err, "terminal gone")
}
