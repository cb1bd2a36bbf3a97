package core

import "fmt"

const (
	// DefaultSamples is the sample count used when none is requested.
	DefaultSamples uint64 = 1 << 30
	// DefaultWorkersPerGroup is the number of lanes sharing one reduction buffer.
	DefaultWorkersPerGroup = 256
	// DefaultGroupsPerUnit is how many groups are planned per parallel unit.
	DefaultGroupsPerUnit = 4
)

// Config controls how an Engine sizes and schedules a launch.
type Config struct {
	WorkersPerGroup int
	GroupsPerUnit   int

	// MaxConcurrentGroups bounds how many groups run at once; 0 uses the device width.
	MaxConcurrentGroups int

	// Seed is the run seed; 0 derives one from the wall clock at launch.
	Seed uint64

	// OnGroupDone is called once per group after its partial is written.
	// It may be called from several goroutines at once.
	OnGroupDone func(group int, partial uint64)
}

// DefaultConfig returns the configuration used by the command line.
func DefaultConfig() Config {
	return Config{
		WorkersPerGroup: DefaultWorkersPerGroup,
		GroupsPerUnit:   DefaultGroupsPerUnit,
	}
}

func (c Config) validate() error {
	if c.WorkersPerGroup < 1 {
		return fmt.Errorf("%w: workers per group must be > 0, got %d", ErrInvalidConfig, c.WorkersPerGroup)
	}
	if c.GroupsPerUnit < 1 {
		return fmt.Errorf("%w: groups per unit must be > 0, got %d", ErrInvalidConfig, c.GroupsPerUnit)
	}
	if c.MaxConcurrentGroups < 0 {
		return fmt.Errorf("%w: max concurrent groups must be >= 0, got %d", ErrInvalidConfig, c.MaxConcurrentGroups)
	}
	return nil
}
