//go:build sound

package sound

import (
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// otoDevice plays buffers through an oto context.
type otoDevice struct {
	ctx     *oto.Context
	readyCh chan struct{}
}

func openDevice() (device, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &otoDevice{ctx: ctx, readyCh: ready}, nil
}

func (d *otoDevice) ready() bool {
	select {
	case <-d.readyCh:
		return true
	default:
		return false
	}
}

func (d *otoDevice) play(samples []byte, volume float64) {
	go func() {
		player := d.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		_ = player.Close()
	}()
}
