package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Artfain/mcpi/core"
)

type stubDevice struct {
	width int
	err   error
	calls int
}

func (d *stubDevice) Name() string { return "stub device" }

func (d *stubDevice) ParallelismWidth() (int, error) {
	d.calls++
	return d.width, d.err
}

func TestRunInvalidArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	dev := &stubDevice{width: 1}

	code := run([]string{"abc"}, &stdout, &stderr, dev)
	require.Equal(t, exitInvalidInput, code)
	require.Contains(t, stderr.String(), "Invalid argument")
	require.Contains(t, stderr.String(), "abc")
	require.Empty(t, stdout.String())
	require.Zero(t, dev.calls)
}

func TestRunTooManyArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	dev := &stubDevice{width: 1}

	code := run([]string{"10", "20"}, &stdout, &stderr, dev)
	require.Equal(t, exitInvalidInput, code)
	require.Zero(t, dev.calls)
}

func TestRunDeviceFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	dev := &stubDevice{err: errors.New("no device found")}

	code := run([]string{"1000"}, &stdout, &stderr, dev)
	require.Equal(t, exitDeviceFailure, code)
	require.Contains(t, stderr.String(), "query device")
	require.Contains(t, stderr.String(), "no device found")
	require.Empty(t, stdout.String())
}

func TestRunReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	dev := &stubDevice{width: 2}

	code := run([]string{"100000"}, &stdout, &stderr, dev)
	require.Equal(t, exitOK, code)

	out := stdout.String()
	for _, label := range []string{
		"Device: stub device",
		"Worker groups: 8",
		"Workers per group: 256",
		"Samples per worker: 49",
		"Requested samples: 100000",
		"Actual samples: 100352",
		"Samples in circle: ",
		"Elapsed: ",
		"Estimated pi: 3.",
		"Reference pi: 3.141592653589793",
		"Absolute error: ",
	} {
		require.Contains(t, out, label)
	}
}

func TestRunZeroSamples(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"0"}, &stdout, &stderr, &stubDevice{width: 1})
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout.String(), "Estimated pi: undefined")
	require.Contains(t, stdout.String(), "Absolute error: undefined")
}

func TestParseSamples(t *testing.T) {
	n, err := parseSamples(nil)
	require.NoError(t, err)
	require.Equal(t, core.DefaultSamples, n)

	n, err = parseSamples([]string{"42"})
	require.NoError(t, err)
	require.EqualValues(t, 42, n)

	for _, bad := range []string{"abc", "-1", "1.5", ""} {
		_, err = parseSamples([]string{bad})
		require.ErrorIs(t, err, core.ErrInvalidInput, bad)
	}
}

func TestPrintReportLines(t *testing.T) {
	plan, err := core.NewSamplePlan(1000, 1, 4)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = printReport(&buf, "dev", core.Result{
		Plan:        plan,
		TotalHits:   785,
		ActualTotal: 1000,
		Elapsed:     1500 * time.Microsecond,
	})
	require.NoError(t, err)
	require.Equal(t, 11, bytes.Count(buf.Bytes(), []byte("\n")))
	require.Contains(t, buf.String(), "Estimated pi: 3.140000000000000")
	require.Contains(t, buf.String(), "Elapsed: 1.5ms")
}
