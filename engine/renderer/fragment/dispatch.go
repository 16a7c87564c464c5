package fragment

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// VaryingsFunc supplies the interpolated varyings for the fragment at a pixel.
// The dispatcher calls it once per fragment, possibly from multiple goroutines
// at once; it must not mutate shared state.
type VaryingsFunc func(x, y int) Varyings

// dispatcher is the implementation of the Dispatcher interface.
type dispatcher struct {
	workers int
	pool    worker.DynamicWorkerPool
}

// Dispatcher evaluates a fragment program once per pixel of a framebuffer.
// Fragments are independent invocations with no shared mutable state and no
// ordering guarantee; the dispatcher exploits that by fanning row bands out
// over a reusable worker pool. The output is identical to a serial evaluation.
type Dispatcher interface {
	// Workers returns the number of pool workers the dispatcher fans out to.
	//
	// Returns:
	//   - int: the worker count
	Workers() int

	// Dispatch evaluates the program for every pixel of the framebuffer,
	// writing one unclamped RGBA value per fragment. Blocks until every
	// invocation has completed.
	//
	// Parameters:
	//   - fb: the color target to write into
	//   - shader: the fragment program to evaluate
	//   - varyings: supplier of per-fragment interpolated inputs
	Dispatch(fb *Framebuffer, shader FragmentShader, varyings VaryingsFunc)
}

var _ Dispatcher = &dispatcher{}

// DispatcherOption is a function that configures a dispatcher during construction.
type DispatcherOption func(*dispatcher)

// WithWorkers is an option builder that sets the number of pool workers.
// A value of 1 makes Dispatch run serially on the calling goroutine.
//
// Parameters:
//   - workers: the worker count (values below 1 are treated as 1)
//
// Returns:
//   - DispatcherOption: a function that applies the worker count option to a dispatcher
func WithWorkers(workers int) DispatcherOption {
	return func(d *dispatcher) {
		d.workers = max(workers, 1)
	}
}

// NewDispatcher creates a Dispatcher with the provided options. Defaults to
// one worker per CPU minus one, matching the headroom a render loop leaves for
// the submitting thread.
//
// Parameters:
//   - options: variadic list of DispatcherOption functions to configure the dispatcher
//
// Returns:
//   - Dispatcher: a new Dispatcher instance
func NewDispatcher(options ...DispatcherOption) Dispatcher {
	d := &dispatcher{
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(d)
	}
	if d.workers > 1 {
		// Queue size of 256 covers the row-band task count with headroom.
		d.pool = worker.NewDynamicWorkerPool(d.workers, 256, 1*time.Second)
	}
	return d
}

func (d *dispatcher) Workers() int {
	return d.workers
}

func (d *dispatcher) Dispatch(fb *Framebuffer, shader FragmentShader, varyings VaryingsFunc) {
	if d.workers == 1 || fb.Height() == 1 {
		dispatchRows(fb, shader, varyings, 0, fb.Height())
		return
	}

	// Band rows so the task count stays well inside the pool queue. A
	// WaitGroup provides the completion barrier since the pool itself only
	// signals idle-exit, not per-dispatch completion.
	band := max(fb.Height()/(d.workers*4), (fb.Height()+255)/256, 1)

	var wg sync.WaitGroup
	taskID := 0
	for y := 0; y < fb.Height(); y += band {
		wg.Add(1)
		startRow := y
		endRow := min(y+band, fb.Height())
		id := taskID
		taskID++
		d.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				dispatchRows(fb, shader, varyings, startRow, endRow)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// dispatchRows evaluates the program for every fragment in [startRow, endRow).
// Each invocation writes only its own pixel, so bands never overlap.
func dispatchRows(fb *Framebuffer, shader FragmentShader, varyings VaryingsFunc, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < fb.Width(); x++ {
			fb.Set(x, y, shader.Fragment(varyings(x, y)))
		}
	}
}
