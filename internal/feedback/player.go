package feedback

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Sink plays rendered samples. Implementations may block while queueing.
type Sink interface {
	Play(samples []float32) error
}

// Player renders cues on a background goroutine and hands them to a Sink.
type Player struct {
	sink   Sink
	volume float64
	log    *zap.Logger
	queue  chan Cue
	wg     sync.WaitGroup
	once   sync.Once
}

func NewPlayer(sink Sink, volume float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{
		sink:   sink,
		volume: volume,
		log:    log,
		queue:  make(chan Cue, 8),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Notify queues a cue. When the queue is full the cue is dropped.
func (p *Player) Notify(c Cue) {
	defer func() {
		// send on a closed queue after Close
		if r := recover(); r != nil {
			p.log.Debug("cue after close", zap.Stringer("cue", c))
		}
	}()
	select {
	case p.queue <- c:
	default:
		p.log.Debug("cue dropped", zap.Stringer("cue", c))
	}
}

func (p *Player) run() {
	defer p.wg.Done()
	for c := range p.queue {
		if err := p.play(c); err != nil {
			p.log.Warn("cue playback failed", zap.Stringer("cue", c), zap.Error(err))
		}
	}
}

func (p *Player) play(c Cue) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("feedback: sink panic: %v", r)
		}
	}()
	if p.sink == nil {
		return ErrUnavailable
	}
	return p.sink.Play(Render(c, SampleRate, p.volume))
}

// Close drains queued cues and stops the worker.
func (p *Player) Close() {
	p.once.Do(func() {
		close(p.queue)
		p.wg.Wait()
	})
}
