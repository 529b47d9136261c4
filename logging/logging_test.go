package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for level := TraceLevel; level <= FatalLevel; level++ {
		parsed, err := ParseLevel(LogLevelToString(level))
		require.Nil(t, err)
		require.Equal(t, level, parsed)
	}
	parsed, err := ParseLevel("debug")
	require.Nil(t, err)
	require.Equal(t, DebugLevel, parsed)
	_, err = ParseLevel("loud")
	require.NotNil(t, err)
}

func TestToLogrusLevel(t *testing.T) {
	require.Equal(t, logrus.TraceLevel, ToLogrusLevel(TraceLevel))
	require.Equal(t, logrus.InfoLevel, ToLogrusLevel(InfoLevel))
	require.Equal(t, logrus.FatalLevel, ToLogrusLevel(FatalLevel))
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, WarnLevel)
	logger.Info("hidden")
	require.Equal(t, 0, buf.Len())
	logger.WithField("run", "abc").Warn("shown")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "run=abc")
}
