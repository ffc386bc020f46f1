package main

import (
	"bufio"
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "dataset-*.csv")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func captureRun(t *testing.T, args []string) (stdout, stderr string, code int) {
	t.Helper()

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	code = run(args, outW, errW)
	require.NoError(t, outW.Close())
	require.NoError(t, errW.Close())

	outBuf := new(bytes.Buffer)
	_, err = outBuf.ReadFrom(bufio.NewReader(outR))
	require.NoError(t, err)
	errBuf := new(bytes.Buffer)
	_, err = errBuf.ReadFrom(bufio.NewReader(errR))
	require.NoError(t, err)

	return outBuf.String(), errBuf.String(), code
}

func TestRun_NoislessMode(t *testing.T) {
	path := writeTempFile(t, "3,1\n1,3\n2,2\n")
	stdout, _, code := captureRun(t, []string{path, "noisless"})
	require.Equal(t, 0, code)
	require.Equal(t, "0\n1\n2\n", stdout)
}

func TestRun_NoisyMode(t *testing.T) {
	path := writeTempFile(t, "3,1\n1,3\n2,2\n")
	stdout, _, code := captureRun(t, []string{path, "noisy", "0.0", "0.1"})
	require.Equal(t, 0, code)
	require.Equal(t, "0\n1\n2\n", stdout)
}

func TestRun_BadMode(t *testing.T) {
	path := writeTempFile(t, "1,2\n")
	_, stderr, code := captureRun(t, []string{path, "bogus"})
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "mode must be")
}

func TestRun_OutOfRangeProbability(t *testing.T) {
	path := writeTempFile(t, "1,2\n")
	_, stderr, code := captureRun(t, []string{path, "noisy", "0.7", "0.1"})
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "error_probability")
}

func TestRun_MissingFile(t *testing.T) {
	_, _, code := captureRun(t, []string{"/no/such/file", "noisless"})
	require.Equal(t, 2, code)
}
