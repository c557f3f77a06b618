// Package sound plays short procedurally synthesized effects for game events
// through oto. The oto device is only compiled with the 'sound' build tag,
// since it needs cgo and ALSA on Linux; other builds are silent.
// A System that could not open the audio device is a silent no-op.
package sound

import (
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geodash/internal/core"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // oto.FormatFloat32LE: 32-bit float samples
)

// Kind identifies a sound effect.
type Kind int

const (
	KindJump Kind = iota
	KindClear
	KindHighScore
	KindGameOver
	KindStart
)

// device is an opened audio output.
type device interface {
	// ready reports whether the output finished initializing.
	ready() bool
	// play starts the buffer without blocking.
	play(samples []byte, volume float64)
}

// System maps events to effects and plays them on a device.
// The zero value and nil are silent.
type System struct {
	out    device
	volume float64

	mu    sync.Mutex
	cache map[Kind][]byte
}

// Open creates the audio output. When enabled is false or the device
// cannot be opened it returns a silent System and logs why.
func Open(enabled bool, volume float64, logger *log.Logger) *System {
	s := newSystem(nil, volume)
	if !enabled {
		return s
	}

	out, err := openDevice()
	if err != nil {
		if logger != nil {
			logger.Warn("sound disabled", "error", err)
		}
		return s
	}
	s.out = out
	return s
}

func newSystem(out device, volume float64) *System {
	return &System{
		out:    out,
		volume: core.ClampF(volume, 0, 1),
		cache:  make(map[Kind][]byte),
	}
}

// Enabled reports whether sounds are actually played.
func (s *System) Enabled() bool {
	return s != nil && s.out != nil
}

// HandleEvents plays the effect mapped to each event.
func (s *System) HandleEvents(events []core.Event) {
	for _, e := range events {
		if k, ok := KindFor(e); ok {
			s.Play(k)
		}
	}
}

// KindFor maps an engine event to its sound.
func KindFor(e core.Event) (Kind, bool) {
	switch e.(type) {
	case core.JumpEvent:
		return KindJump, true
	case core.ObstacleClearedEvent:
		return KindClear, true
	case core.HighScoreEvent:
		return KindHighScore, true
	case core.RunEndedEvent:
		return KindGameOver, true
	case core.RunStartedEvent:
		return KindStart, true
	}
	return 0, false
}

// Play starts an effect without blocking.
func (s *System) Play(k Kind) {
	if !s.Enabled() || !s.out.ready() {
		return
	}
	s.out.play(s.samples(k), s.volume)
}

func (s *System) samples(k Kind) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.cache[k]; ok {
		return b
	}
	b := Synthesize(k)
	s.cache[k] = b
	return b
}

// soundReader streams a prebuilt buffer to a player.
type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Synthesize renders an effect as interleaved stereo float32 LE samples.
func Synthesize(k Kind) []byte {
	switch k {
	case KindJump:
		// Quick upward chirp
		return tone(0.12, func(t, p float64) float64 {
			return square(t, 300+500*p) * 0.35 * (1 - p)
		})
	case KindClear:
		return tone(0.06, func(t, p float64) float64 {
			return math.Sin(2*math.Pi*880*t) * 0.4 * math.Exp(-p*5)
		})
	case KindHighScore:
		// Three-note arpeggio
		notes := []float64{523.25, 659.25, 783.99}
		return tone(0.3, func(t, p float64) float64 {
			idx := int(p * float64(len(notes)))
			if idx >= len(notes) {
				idx = len(notes) - 1
			}
			local := p*float64(len(notes)) - float64(idx)
			return math.Sin(2*math.Pi*notes[idx]*t) * 0.4 * (1 - local*0.7)
		})
	case KindGameOver:
		return tone(0.5, func(t, p float64) float64 {
			return square(t, 440-300*p) * 0.3 * math.Exp(-p*3)
		})
	case KindStart:
		return tone(0.15, func(t, p float64) float64 {
			return math.Sin(2*math.Pi*(440+440*p)*t) * 0.35 * math.Sin(math.Pi*p)
		})
	}
	return nil
}

// tone renders dur seconds of the mono signal f(t, progress) to both channels.
func tone(dur float64, f func(t, p float64) float64) []byte {
	n := int(dur * SampleRate)
	buf := make([]byte, n*ChannelCount*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		putStereoF32(buf, i, core.ClampF(f(t, p), -1, 1))
	}
	return buf
}

func square(t, freq float64) float64 {
	if math.Sin(2*math.Pi*freq*t) >= 0 {
		return 1
	}
	return -1
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		off := i*ChannelCount*4 + c*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}
