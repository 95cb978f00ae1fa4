package transcript

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirrorsOutput(t *testing.T) {
	var console, file bytes.Buffer
	tr := New(&console, &file, WithColor(false))

	tr.Start("This program computes things.", "run_01J0000000000000000000000")
	tr.Divider()
	tr.Prompt("Enter x:")
	tr.Echo("Enter x:", "2.5\n")
	tr.Notice("x was reset to 1.")
	tr.Result("sine(x)", "0.8414709848")
	tr.End()
	require.NoError(t, tr.Close())

	want := "\n" + Divider + "\nStart Of Program\n" + Divider + "\n" +
		"\nThis program computes things.\n" +
		"\nrun: run_01J0000000000000000000000\n" +
		"\n" + Divider + "\n" +
		"\nEnter x: 2.5\n" +
		"\nx was reset to 1.\n" +
		"\nsine(x) = 0.8414709848.\n" +
		"\n" + Divider + "\nEnd Of Program\n" + Divider + "\n"
	assert.Equal(t, want, file.String())

	out := console.String()
	assert.Contains(t, out, "Start Of Program")
	assert.Contains(t, out, "\nEnter x: ")
	assert.NotContains(t, out, "Enter x: 2.5")
	assert.Contains(t, out, "sine(x) = 0.8414709848.")
	assert.Contains(t, out, "End Of Program")
}

func TestOpenTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trig_output.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale contents from last run\n"), 0o644))

	var console bytes.Buffer
	tr, err := Open(path, &console, WithColor(false))
	require.NoError(t, err)
	tr.Printf("fresh %d", 1)
	require.NoError(t, tr.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\nfresh 1\n", string(data))
}

func TestOpenFailure(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "out.txt"), &bytes.Buffer{})
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorIsSticky(t *testing.T) {
	var console bytes.Buffer
	tr := New(&console, failingWriter{}, WithColor(false))

	tr.Printf("one")
	tr.Printf("two")

	assert.EqualError(t, tr.Err(), "disk full")
	assert.Equal(t, "\none\n", console.String())
	assert.Error(t, tr.Close())
}
