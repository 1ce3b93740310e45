package viewer

import (
	"sync"
	"time"
)

// Ticker is a periodic source that can be paused and resumed.
type Ticker interface {
	Start()
	Stop()
}

// Pump calls tick every interval. Each tick is handed to dispatch, which
// runs it on the UI thread and returns once it has finished, so ticks
// never overlap. A tick that was already queued when Stop was called is
// dropped.
type Pump struct {
	interval time.Duration
	dispatch func(func())
	tick     func()

	mu      sync.Mutex
	gen     uint64
	stop    chan struct{}
	running bool
}

func NewPump(interval time.Duration, dispatch func(func()), tick func()) *Pump {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &Pump{
		interval: interval,
		dispatch: dispatch,
		tick:     tick,
	}
}

func (p *Pump) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true
	p.gen++
	p.stop = make(chan struct{})
	go p.run(p.gen, p.stop)
}

// Stop does not wait for the loop goroutine, it may be blocked handing a
// tick to the very thread calling Stop.
func (p *Pump) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.running = false
	p.gen++
	close(p.stop)
}

func (p *Pump) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Pump) current(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running && p.gen == gen
}

func (p *Pump) run(gen uint64, stop <-chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.dispatch(func() {
				if p.current(gen) {
					p.tick()
				}
			})
		}
	}
}
