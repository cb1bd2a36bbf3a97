package core

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Engine plans and launches sampling grids on a device.
type Engine struct {
	device Device
	cfg    Config
	width  int
}

// NewEngine validates cfg and queries the device width once.
func NewEngine(device Device, cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	width, err := device.ParallelismWidth()
	if err != nil {
		return nil, &DeviceError{Op: "query device", Err: err}
	}
	if width < 1 {
		return nil, &DeviceError{Op: "query device", Err: fmt.Errorf("%w: parallelism width %d", ErrInvalidConfig, width)}
	}
	return &Engine{device: device, cfg: cfg, width: width}, nil
}

// Device returns the backend the engine launches on.
func (e *Engine) Device() Device {
	return e.device
}

// Plan sizes a grid for requested samples from the device width.
func (e *Engine) Plan(requested uint64) (SamplePlan, error) {
	return NewSamplePlan(requested, e.width*e.cfg.GroupsPerUnit, e.cfg.WorkersPerGroup)
}

// Run plans and launches the Monte Carlo kernel for requested samples.
func (e *Engine) Run(requested uint64) (Result, error) {
	plan, err := e.Plan(requested)
	if err != nil {
		return Result{}, &DeviceError{Op: "plan", Err: err}
	}
	return e.Launch(plan, MonteCarloKernel)
}

// Launch runs kernel on every worker of plan, reduces each group and combines
// the group partials. Any failure aborts the whole launch.
func (e *Engine) Launch(plan SamplePlan, kernel Kernel) (Result, error) {
	seed := e.cfg.Seed
	if seed == 0 {
		seed = SeedFromClock()
	}
	return e.launch(plan, kernel, seed)
}

func (e *Engine) launch(plan SamplePlan, kernel Kernel, seed uint64) (Result, error) {
	launchesTotal.Inc()
	if plan.Groups < 1 || plan.WorkersPerGroup < 1 {
		return Result{}, e.fail(&DeviceError{Op: "launch", Err: fmt.Errorf("%w: %d x %d grid", ErrInvalidConfig, plan.Groups, plan.WorkersPerGroup)})
	}

	limit := e.cfg.MaxConcurrentGroups
	if limit == 0 {
		limit = e.width
	}

	slog.Debug("Launching grid",
		"groups", plan.Groups, "workersPerGroup", plan.WorkersPerGroup,
		"samplesPerWorker", plan.SamplesPerWorker, "concurrency", limit)

	partials := make([]uint64, plan.Groups)
	progress := rate.NewLimiter(rate.Every(250*time.Millisecond), 1)

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(limit)
	for group := 0; group < plan.Groups; group++ {
		g.Go(func() error {
			partial, err := runGroup(plan, group, kernel, seed)
			if err != nil {
				return err
			}
			partials[group] = partial
			if progress.Allow() {
				slog.Debug("Group reduced", "group", group, "partial", partial)
			}
			if e.cfg.OnGroupDone != nil {
				e.cfg.OnGroupDone(group, partial)
			}
			return nil
		})
	}
	err := g.Wait()
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, e.fail(err)
	}

	total := CombinePartials(partials)
	if total > plan.ActualTotal {
		return Result{}, e.fail(&DeviceError{Op: "combine", Err: fmt.Errorf("%d hits exceed %d samples", total, plan.ActualTotal)})
	}

	launchDuration.Observe(elapsed.Seconds())
	samplesTotal.Add(float64(plan.ActualTotal))
	hitsTotal.Add(float64(total))

	return Result{
		Plan:        plan,
		Seed:        seed,
		Partials:    partials,
		TotalHits:   total,
		ActualTotal: plan.ActualTotal,
		Elapsed:     elapsed,
	}, nil
}

func (e *Engine) fail(err error) error {
	op := "launch"
	var de *DeviceError
	if errors.As(err, &de) {
		op = de.Op
	}
	launchFailures.WithLabelValues(op).Inc()
	slog.Error("Launch failed", "op", op, "error", err)
	return err
}

// runGroup runs one worker group: every lane samples, stores its count in the
// group scratch and takes part in the tree reduction. Lane 0 hands back the total.
func runGroup(plan SamplePlan, group int, kernel Kernel, seed uint64) (uint64, error) {
	scratch := NewScratch(plan.WorkersPerGroup)

	var (
		wg       sync.WaitGroup
		mutex    sync.Mutex
		firstErr error
		partial  uint64
	)
	wg.Add(plan.WorkersPerGroup)
	for lane := 0; lane < plan.WorkersPerGroup; lane++ {
		go func() {
			defer wg.Done()
			w := &Worker{
				ID:      group*plan.WorkersPerGroup + lane,
				Group:   group,
				Lane:    lane,
				Samples: plan.SamplesPerWorker,
				seed:    seed,
			}
			hits, err := runKernel(kernel, w)
			if err != nil {
				mutex.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mutex.Unlock()
				hits = 0
			}
			// Every lane reaches the barrier, failed or not, so the group never deadlocks.
			scratch.Store(lane, hits)
			if total, ok := scratch.Reduce(lane); ok {
				partial = total
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return 0, firstErr
	}
	return partial, nil
}

func runKernel(kernel Kernel, w *Worker) (hits uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DeviceError{Op: "kernel", Err: fmt.Errorf("worker %d panicked: %v", w.ID, r)}
		}
	}()
	hits = kernel(w)
	if hits > w.Samples {
		return 0, &DeviceError{Op: "kernel", Err: fmt.Errorf("worker %d reported %d hits for %d samples", w.ID, hits, w.Samples)}
	}
	return hits, nil
}
