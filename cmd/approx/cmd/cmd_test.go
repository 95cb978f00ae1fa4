package cmd

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GriffinCanCode/approx/internal/config"
	"github.com/GriffinCanCode/approx/internal/logging"
	"github.com/GriffinCanCode/approx/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand(&app{log: logging.NewNop()})
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPiWritesTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pi.txt")
	out, err := execute(t, "", "pi", "--iterations", "1000", "--transcript", path, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "pi(1000) = 3.14059265")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Start Of Program")
	assert.Contains(t, string(data), "The value which was entered for iterations is 1000.")
	assert.Contains(t, string(data), "pi(1000) = 3.14059265")
}

func TestDefaultTranscriptPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APPROX_TRANSCRIPT_DIR", dir)

	_, err := execute(t, "", "power", "--base", "2", "--exponent", "10", "--no-color")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "power_output.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2^10 = 1024.")
}

func TestTrigPromptsForMissingInputs(t *testing.T) {
	out, err := execute(t, "0\n0\n", "trig", "--transcript", "-", "--no-color", "--precision", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "sine(0) = 0.")
	assert.Contains(t, out, "cosine(0) = 1.")
	assert.Contains(t, out, "Would you like to continue")
}

func TestLogarithmCompare(t *testing.T) {
	out, err := execute(t, "", "logarithm", "--x", "8", "--base", "2", "--method", "series",
		"--compare", "--transcript", "-", "--no-color", "--precision", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "log_2(8) = 3.")
	assert.Contains(t, out, "reference = 3")
}

func TestFTCExpressionFlag(t *testing.T) {
	out, err := execute(t, "", "ftc", "--expr", "2*x + 3", "--a", "0", "--b", "1", "--x", "1",
		"--transcript", "-", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "f(1) = 5.")
}

func TestProgramEndOfInput(t *testing.T) {
	_, err := execute(t, "", "power", "--transcript", "-", "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base")
}

func TestEvalLocal(t *testing.T) {
	out, err := execute(t, "", "eval", "approx.pi", "iterations=1000")
	require.NoError(t, err)
	assert.Contains(t, out, `"success": true`)
	assert.Contains(t, out, `"result": 3.14059265`)
}

func TestEvalToolFailure(t *testing.T) {
	out, err := execute(t, "", "eval", "approx.ln", "x=-1")
	assert.ErrorIs(t, err, errToolFailed)
	assert.Contains(t, out, `"success": false`)
}

func TestEvalUnknownTool(t *testing.T) {
	out, err := execute(t, "", "eval", "approx.nope")
	assert.ErrorIs(t, err, errToolFailed)
	assert.Contains(t, out, "unknown tool: approx.nope")

	_, err = execute(t, "", "eval", "trig.sin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service not found: trig")
}

func TestEvalBadParameter(t *testing.T) {
	_, err := execute(t, "", "eval", "approx.sin", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key=value")
}

func TestEvalRemote(t *testing.T) {
	srv, err := server.NewServer(config.Default(), logging.NewNop(), "test")
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	out, err := execute(t, "", "eval", "approx.cos", "x=0", "--remote", ts.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"success": true`)
	assert.Contains(t, out, `"result": 1`)

	out, err = execute(t, "", "tools", "--remote", ts.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"approx.riemann"`)
}

func TestEvalWritesMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "approx.prom")
	_, err := execute(t, "", "eval", "approx.sin", "x=1", "--metrics-file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `approx_tool_calls_total{status="success",tool="approx.sin"} 1`)
}

func TestTools(t *testing.T) {
	out, err := execute(t, "", "tools")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "approx.sin"`)

	out, err = execute(t, "", "tools", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "id: approx.sin")

	_, err = execute(t, "", "tools", "--format", "xml")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "approx dev ("))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, 1.5, parseValue("1.5"))
	assert.Equal(t, true, parseValue("true"))
	assert.Equal(t, "x^2", parseValue("x^2"))
	assert.Equal(t, "+Inf", parseValue("+Inf"))
	assert.Equal(t, "NaN", parseValue("NaN"))
}
