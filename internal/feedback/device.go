package feedback

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// Device mixes queued cues into a stereo portaudio output stream.
type Device struct {
	stream  *portaudio.Stream
	mu      sync.Mutex
	pending []float32
}

// OpenDevice starts the default output stream. The error wraps
// ErrUnavailable when no device can be opened.
func OpenDevice() (*Device, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	d := &Device{}
	// Output only; duplex streams fail on many Linux setups.
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, d.process)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	d.stream = stream
	return d, nil
}

// Play mixes samples over whatever is still pending.
func (d *Device) Play(samples []float32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, v := range samples {
		if i < len(d.pending) {
			d.pending[i] += v
		} else {
			d.pending = append(d.pending, v)
		}
	}
	return nil
}

func (d *Device) process(out [][]float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := len(out[0])
	for i := 0; i < n; i++ {
		var v float32
		if i < len(d.pending) {
			v = d.pending[i]
		}
		out[0][i] = v
		out[1][i] = v
	}
	if n >= len(d.pending) {
		d.pending = d.pending[:0]
	} else {
		d.pending = d.pending[n:]
	}
}

func (d *Device) Close() error {
	if d.stream != nil {
		d.stream.Stop()
		d.stream.Close()
	}
	return portaudio.Terminate()
}
