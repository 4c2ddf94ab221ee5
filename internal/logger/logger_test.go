package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func Test_Replace_ShouldRouteEntriesToNewLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))
	defer restore()

	Info("ledger saved", zap.String("ledger", "abc"))
	Warn("price unavailable", zap.String("quote", "gold"))

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "ledger saved", entries[0].Message)
	assert.Equal(t, "abc", entries[0].ContextMap()["ledger"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}
