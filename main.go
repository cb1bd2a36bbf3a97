package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/Artfain/mcpi/core"
	"github.com/cheggaaa/pb/v3"
)

const (
	exitOK            = 0
	exitInvalidInput  = 1
	exitDeviceFailure = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, core.NewCPUDevice()))
}

// run estimates π on dev and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, dev core.Device) int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	requested, err := parseSamples(args)
	if err != nil {
		slog.Error("Invalid argument", "error", err)
		return exitInvalidInput
	}

	bar := pb.Simple.New(0).SetWriter(stderr)
	cfg := core.DefaultConfig()
	cfg.OnGroupDone = func(int, uint64) {
		bar.Increment()
	}

	engine, err := core.NewEngine(dev, cfg)
	if err != nil {
		return deviceFailure(err)
	}
	plan, err := engine.Plan(requested)
	if err != nil {
		return deviceFailure(&core.DeviceError{Op: "plan", Err: err})
	}

	bar.SetTotal(int64(plan.Groups))
	bar.Start()
	res, err := engine.Launch(plan, core.MonteCarloKernel)
	bar.Finish()
	if err != nil {
		return deviceFailure(err)
	}

	if err := printReport(stdout, engine.Device().Name(), res); err != nil {
		slog.Error("Failed to write report", "error", err)
		return exitDeviceFailure
	}
	return exitOK
}

// parseSamples reads the optional sample count argument.
func parseSamples(args []string) (uint64, error) {
	switch len(args) {
	case 0:
		return core.DefaultSamples, nil
	case 1:
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: sample count %q is not an unsigned integer", core.ErrInvalidInput, args[0])
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: expected at most one argument, got %d", core.ErrInvalidInput, len(args))
	}
}

func deviceFailure(err error) int {
	op := "device"
	var de *core.DeviceError
	if errors.As(err, &de) {
		op = de.Op
	}
	slog.Error("Device failure", "op", op, "error", err)
	return exitDeviceFailure
}
