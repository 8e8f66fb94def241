package main

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gcd "github.com/sgorgun/gcd-version-2"
	"github.com/sgorgun/gcd-version-2/internal/log"
)

func run(t *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer
	oldOutput, oldLevel := log.Output, log.Level
	t.Cleanup(func() { log.Output, log.Level = oldOutput, oldLevel })
	log.Output = &buf
	app := newApp()
	app.Writer = &buf
	app.ErrWriter = &buf
	err := app.Run(append([]string{"gcd"}, args...))
	return buf.String(), err
}

func TestEuclid(t *testing.T) {
	out, err := run(t, "euclid", "12", "18")
	require.NoError(t, err)
	assert.Equal(t, "gcd = 6\n", out)
}

func TestSteinAlias(t *testing.T) {
	out, err := run(t, "s", "48", "18", "12")
	require.NoError(t, err)
	assert.Equal(t, "gcd = 6\n", out)
}

func TestVariadic(t *testing.T) {
	out, err := run(t, "stein", "60", "90", "150", "210")
	require.NoError(t, err)
	assert.Equal(t, "gcd = 30\n", out)

	out, err = run(t, "euclid", "60", "90", "150", "210")
	require.NoError(t, err)
	assert.Equal(t, "gcd = 30\n", out)
}

func TestNegativeOperands(t *testing.T) {
	out, err := run(t, "euclid", "--", "-12", "18")
	require.NoError(t, err)
	assert.Equal(t, "gcd = 6\n", out)
}

func TestTimeFlag(t *testing.T) {
	out, err := run(t, "euclid", "--time", "12", "18")
	require.NoError(t, err)
	assert.Contains(t, out, "gcd = 6\n")
	assert.Regexp(t, `elapsed = \d+ ms`, out)
}

func TestExt(t *testing.T) {
	out, err := run(t, "ext", "240", "46")
	require.NoError(t, err)
	assert.Equal(t, "2 = -9*240 + 47*46\n", out)

	_, err = run(t, "ext", "1", "2", "3")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := run(t, "--quiet", "compare", "48", "18", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "euclid = 6 (")
	assert.Contains(t, out, "stein  = 6 (")
	assert.NotContains(t, out, "results agree")
}

func TestLibraryErrors(t *testing.T) {
	_, err := run(t, "euclid", "0", "0")
	require.Error(t, err)
	assert.Equal(t, gcd.ErrInvalidArgument, errors.Cause(err))

	_, err = run(t, "stein", "--", "-2147483648", "4")
	require.Error(t, err)
	assert.Equal(t, gcd.ErrOutOfRange, errors.Cause(err))
}

func TestUsageErrors(t *testing.T) {
	_, err := run(t, "euclid", "12")
	assert.Equal(t, errUsage, err)

	_, err = run(t, "stein", "12", "eighteen")
	assert.Error(t, err)

	_, err = run(t, "stein", "12", "2147483648")
	assert.Error(t, err)

	_, err = run(t, "--level", "loud", "stein", "12", "18")
	assert.Error(t, err)
}
