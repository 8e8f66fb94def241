package log

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level LogLevel) *bytes.Buffer {
	var buf bytes.Buffer
	oldOutput, oldLevel, oldNoColor := Output, Level, color.NoColor
	Output, Level, color.NoColor = &buf, level, true
	t.Cleanup(func() {
		Output, Level, color.NoColor = oldOutput, oldLevel, oldNoColor
	})
	return &buf
}

func TestLevels(t *testing.T) {
	buf := capture(t, LogLevel_Warn)
	Errorf("e%d", 1)
	Warnf("w%d", 2)
	Infof("i%d", 3)
	Debugf("d%d", 4)
	assert.Equal(t, "[ERROR] e1\n[WARNING] w2\n", buf.String())
}

func TestDebugShowsEverything(t *testing.T) {
	buf := capture(t, LogLevel_Debug)
	Infof("gcd = %d", 6)
	Debugf("operands %v", []int32{12, 18})
	assert.Equal(t, "gcd = 6\noperands [12 18]\n", buf.String())
}

func TestNone(t *testing.T) {
	buf := capture(t, LogLevel_None)
	Errorf("boom")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, LogLevel_Debug, l)
	l, err = ParseLevel("silent")
	require.NoError(t, err)
	assert.Equal(t, LogLevel_None, l)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
