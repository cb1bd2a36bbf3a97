package core

import (
	"fmt"
	"runtime"
)

// Device is an execution backend that can run a grid of workers.
type Device interface {
	Name() string
	// ParallelismWidth returns how many execution units can run groups at once.
	ParallelismWidth() (int, error)
}

// CPUDevice runs worker groups on the host CPU.
type CPUDevice struct{}

func NewCPUDevice() *CPUDevice {
	return &CPUDevice{}
}

func (d *CPUDevice) Name() string {
	return fmt.Sprintf("cpu %s/%s (%d logical cores)", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
}

func (d *CPUDevice) ParallelismWidth() (int, error) {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 0, fmt.Errorf("GOMAXPROCS reported %d processors", n)
	}
	return n, nil
}
