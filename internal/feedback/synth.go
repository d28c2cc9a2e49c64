package feedback

import "math"

const (
	SampleRate = 44100
	BufferSize = 512
)

type waveform int

const (
	sine waveform = iota
	triangle
)

// ramp is one envelope breakpoint. The value moves from the previous
// breakpoint to V at time T, linearly or exponentially.
type ramp struct {
	T, V float64
	Exp  bool
}

type voice struct {
	wave      waveform
	freqFrom  float64
	freqTo    float64
	sweep     float64 // seconds of exponential frequency glide
	gainStart float64
	gain      []ramp
	length    float64
}

var voices = map[Cue]voice{
	// High, short tick.
	Click: {
		wave: sine, freqFrom: 800, freqTo: 400, sweep: 0.05,
		gainStart: 0.1, gain: []ramp{{T: 0.05, V: 0.01, Exp: true}},
		length: 0.05,
	},
	// Airy rising whoosh.
	Swoosh: {
		wave: triangle, freqFrom: 200, freqTo: 600, sweep: 0.2,
		gainStart: 0, gain: []ramp{{T: 0.1, V: 0.1}, {T: 0.3, V: 0}},
		length: 0.3,
	},
	Pop: {
		wave: sine, freqFrom: 400, freqTo: 600, sweep: 0.1,
		gainStart: 0.1, gain: []ramp{{T: 0.15, V: 0.01, Exp: true}},
		length: 0.15,
	},
}

func (v voice) freqAt(t float64) float64 {
	if t >= v.sweep {
		return v.freqTo
	}
	return v.freqFrom * math.Pow(v.freqTo/v.freqFrom, t/v.sweep)
}

func (v voice) gainAt(t float64) float64 {
	t0, g0 := 0.0, v.gainStart
	for _, r := range v.gain {
		if t <= r.T {
			u := (t - t0) / (r.T - t0)
			if r.Exp && g0 > 0 && r.V > 0 {
				return g0 * math.Pow(r.V/g0, u)
			}
			return g0 + (r.V-g0)*u
		}
		t0, g0 = r.T, r.V
	}
	return g0
}

func oscillate(w waveform, phase float64) float64 {
	p := phase - math.Floor(phase)
	if w == triangle {
		return 1.0 - 4.0*math.Abs(p-0.5)
	}
	return math.Sin(2 * math.Pi * p)
}

// Render synthesises a cue as mono samples at the given rate, scaled by volume.
func Render(c Cue, rate, volume float64) []float32 {
	v, ok := voices[c]
	if !ok {
		return nil
	}
	n := int(math.Round(v.length * rate))
	out := make([]float32, n)
	dt := 1.0 / rate
	phase := 0.0
	for i := range out {
		t := float64(i) * dt
		out[i] = float32(oscillate(v.wave, phase) * v.gainAt(t) * volume)
		phase += v.freqAt(t) * dt
	}
	return out
}
