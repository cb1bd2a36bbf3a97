package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Artfain/mcpi/core"
)

func TestCPUDevice(t *testing.T) {
	dev := core.NewCPUDevice()
	require.Contains(t, dev.Name(), "cpu")

	width, err := dev.ParallelismWidth()
	require.NoError(t, err)
	require.GreaterOrEqual(t, width, 1)
}
