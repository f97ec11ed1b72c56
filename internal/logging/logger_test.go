package logging_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/merchkit/combobuilder/internal/logging"
)

func TestNewFromConfigValuesAppliesGlobalLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	logging.NewFromConfigValues("debug", "json")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevelAdjustsRunningProcess(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	logging.NewFromConfigValues("info", "console")
	logging.SetLevel("error")
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())

	// Unrecognized values fall back to info rather than silencing output.
	logging.SetLevel("bogus")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
