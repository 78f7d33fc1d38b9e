package partition

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/cwbudde/algo-surv/internal/cpu"
)

// bytesPerElement is the assumed working-set footprint of one element when
// sizing spans against the cache. An observation is a float64 time plus an
// event flag, padded to 16 bytes.
const bytesPerElement = 16

// PoolConfig configures a Pool.
type PoolConfig struct {
	// Workers is the maximum number of spans run concurrently.
	Workers int

	// MinSpan is the smallest span length worth a goroutine of its own.
	MinSpan int
}

// PoolOption mutates a PoolConfig.
type PoolOption func(*PoolConfig)

// DefaultPoolConfig returns one worker per schedulable CPU and a minimum span
// that fills half of the L2 cache.
func DefaultPoolConfig() PoolConfig {
	topo := cpu.DetectTopology()

	minSpan := topo.L2Bytes / 2 / bytesPerElement
	if minSpan < 1024 {
		minSpan = 1024
	}

	return PoolConfig{
		Workers: runtime.GOMAXPROCS(0),
		MinSpan: minSpan,
	}
}

// WithWorkers sets the maximum number of concurrent spans.
func WithWorkers(workers int) PoolOption {
	return func(cfg *PoolConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithMinSpan sets the minimum span length.
func WithMinSpan(minSpan int) PoolOption {
	return func(cfg *PoolConfig) {
		if minSpan > 0 {
			cfg.MinSpan = minSpan
		}
	}
}

// Pool is a goroutine-backed Runner. It holds no mutable state and may be
// shared by any number of callers.
type Pool struct {
	cfg PoolConfig
}

// NewPool creates a Pool from the default configuration and opts.
func NewPool(opts ...PoolOption) *Pool {
	cfg := DefaultPoolConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Pool{cfg: cfg}
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int {
	return p.cfg.Workers
}

// MinSpan returns the configured minimum span length.
func (p *Pool) MinSpan() int {
	return p.cfg.MinSpan
}

// Split implements Runner. The span count is the smaller of the worker count
// and n/MinSpan, and at least one. A zero-value Pool yields a single span.
func (p *Pool) Split(n int) []Span {
	parts := p.cfg.Workers
	if byLen := n / max(p.cfg.MinSpan, 1); byLen < parts {
		parts = byLen
	}
	return Even(n, parts)
}

// WorkerPanic is the value Execute re-panics with when a task panics. Value
// is what the task passed to panic and Stack is the task goroutine's stack
// at the time of the panic.
type WorkerPanic struct {
	Value any
	Stack []byte
}

func (w *WorkerPanic) Error() string {
	return fmt.Sprintf("partition: worker panic: %v", w.Value)
}

// Unwrap returns Value when it is an error.
func (w *WorkerPanic) Unwrap() error {
	if err, ok := w.Value.(error); ok {
		return err
	}
	return nil
}

// Execute implements Runner. Each task runs on its own goroutine. If any task
// panics, Execute waits for the others and then panics with a *WorkerPanic
// carrying the first value.
func (p *Pool) Execute(tasks int, fn func(i int)) {
	if tasks == 1 {
		fn(0)
		return
	}

	var (
		wg        sync.WaitGroup
		panicOnce sync.Once
		panicked  *WorkerPanic
	)

	wg.Add(tasks)
	for i := 0; i < tasks; i++ {
		go func(i int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					panicOnce.Do(func() { panicked = &WorkerPanic{Value: r, Stack: stack} })
				}
			}()
			fn(i)
		}(i)
	}
	wg.Wait()

	if panicked != nil {
		panic(panicked)
	}
}
