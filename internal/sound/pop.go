// internal/sound/pop.go
package sound

import (
	"log"
	"math"

	"balloon-pump/internal/config"
	"balloon-pump/internal/event"
	"balloon-pump/internal/utils"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// PopSamples synthesizes a short pop: white noise under a fast exponential
// decay. Output is 16-bit little-endian stereo PCM.
func PopSamples(sampleRate, ms int, level float64) []byte {
	n := sampleRate * ms / 1000
	buf := make([]byte, n*4)
	rng := utils.NewPRNGService(1)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		env := math.Exp(-t * 8)
		val := (rng.Float64()*2 - 1) * env * level

		v := int16(val * 32767)
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}

// PopSound plays the pop sample whenever a balloon is popped.
type PopSound struct {
	player *audio.Player
}

func NewPopSound(ctx *audio.Context) *PopSound {
	samples := PopSamples(ctx.SampleRate(), config.PopSoundMs, config.PopSoundLevel)
	return &PopSound{player: ctx.NewPlayerFromBytes(samples)}
}

// OnEvent restarts the sample; pops closer together than its length cut it short.
func (s *PopSound) OnEvent(e event.Event) {
	if e.Type != event.BalloonPopped {
		return
	}
	if err := s.player.Rewind(); err != nil {
		log.Printf("WARNING: pop sound rewind failed: %v", err)
		return
	}
	s.player.Play()
}
