package feedback

import (
	"errors"
	"math"
	"sync"
	"testing"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseCue(t *testing.T) {
	for _, c := range []Cue{Click, Swoosh, Pop} {
		got, err := ParseCue(c.String())
		if err != nil {
			t.Fatalf("parse %s: %v", c, err)
		}
		if got != c {
			t.Errorf("expected %s, got %s", c, got)
		}
	}

	if _, err := ParseCue("bell"); !errors.Is(err, ErrUnknownCue) {
		t.Errorf("expected ErrUnknownCue, got %v", err)
	}
}

func TestRenderLength(t *testing.T) {
	tests := []struct {
		cue  Cue
		want int
	}{
		{Click, 2205},
		{Swoosh, 13230},
		{Pop, 6615},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			got := len(Render(tt.cue, SampleRate, 1))
			if got != tt.want {
				t.Errorf("expected %d samples, got %d", tt.want, got)
			}
		})
	}
}

func TestRenderGainBounded(t *testing.T) {
	for _, c := range []Cue{Click, Swoosh, Pop} {
		peak := 0.0
		for _, v := range Render(c, SampleRate, 0.5) {
			peak = math.Max(peak, math.Abs(float64(v)))
		}
		if peak > 0.05+1e-6 {
			t.Errorf("%s: peak %.4f exceeds scaled gain", c, peak)
		}
		if peak == 0 {
			t.Errorf("%s: rendered silence", c)
		}
	}
}

func TestSwooshRises(t *testing.T) {
	s := Render(Swoosh, SampleRate, 1)
	early := DominantFrequency(Window(s, SampleRate, 0, 0.05), SampleRate)
	late := DominantFrequency(Window(s, SampleRate, 0.15, 0.2), SampleRate)

	if early >= 300 {
		t.Errorf("expected early pitch below 300Hz, got %.1f", early)
	}
	if late <= 400 {
		t.Errorf("expected late pitch above 400Hz, got %.1f", late)
	}
}

func TestPopSettles(t *testing.T) {
	s := Render(Pop, SampleRate, 1)
	f := DominantFrequency(Window(s, SampleRate, 0.1, 0.15), SampleRate)
	if math.Abs(f-600) > 25 {
		t.Errorf("expected ~600Hz, got %.1f", f)
	}
}

func TestDominantFrequencyShortInput(t *testing.T) {
	if f := DominantFrequency(nil, SampleRate); f != 0 {
		t.Errorf("expected 0, got %f", f)
	}
	if w := Window([]float32{1, 2}, SampleRate, 1, 2); w != nil {
		t.Errorf("expected nil window, got %v", w)
	}
}

type recordingSink struct {
	mu    sync.Mutex
	plays int
}

func (s *recordingSink) Play(samples []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plays++
	return nil
}

type failingSink struct{ panics bool }

func (s failingSink) Play([]float32) error {
	if s.panics {
		panic("device gone")
	}
	return errors.New("blocked by policy")
}

func TestPlayerDeliversCues(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := &recordingSink{}
	p := NewPlayer(sink, 1, nil)
	p.Notify(Click)
	p.Notify(Swoosh)
	p.Notify(Pop)
	p.Close()

	if sink.plays != 3 {
		t.Errorf("expected 3 plays, got %d", sink.plays)
	}
}

func TestPlayerSwallowsFailures(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := []struct {
		name string
		sink Sink
	}{
		{"error", failingSink{}},
		{"panic", failingSink{panics: true}},
		{"no device", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			p := NewPlayer(tt.sink, 1, zap.New(core))
			p.Notify(Swoosh)
			p.Close()

			if logs.FilterMessage("cue playback failed").Len() != 1 {
				t.Errorf("expected one warning, got %v", logs.All())
			}
		})
	}
}

func TestPlayerNotifyAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewPlayer(&recordingSink{}, 1, nil)
	p.Close()
	p.Close()
	p.Notify(Pop)
}
