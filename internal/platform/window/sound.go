package window

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/tui-whack/internal/core"
)

const sampleRate = 44100

// cue describes a short synthesized tone sweeping from one frequency to another.
type cue struct {
	from, to float64 // Hz
	length   time.Duration
	volume   float64 // 0..1
}

var cues = map[core.EventKind]cue{
	core.EventRoundStart: {from: 330, to: 660, length: 150 * time.Millisecond, volume: 0.25},
	core.EventHit:        {from: 880, to: 1320, length: 70 * time.Millisecond, volume: 0.3},
	core.EventMiss:       {from: 220, to: 160, length: 140 * time.Millisecond, volume: 0.35},
	core.EventEscape:     {from: 520, to: 390, length: 90 * time.Millisecond, volume: 0.15},
	core.EventRoundEnd:   {from: 660, to: 220, length: 400 * time.Millisecond, volume: 0.3},
}

// Synth plays event cues through the Ebitengine audio context.
// It implements audio.Player.
type Synth struct {
	ctx   *audio.Context
	pcm   map[core.EventKind][]byte
	muted bool
}

// NewSynth renders every cue up front. There is one audio context per
// process; an existing one is reused.
func NewSynth() *Synth {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	pcm := make(map[core.EventKind][]byte, len(cues))
	for kind, c := range cues {
		pcm[kind] = renderCue(c, ctx.SampleRate())
	}
	return &Synth{ctx: ctx, pcm: pcm}
}

// Play starts the cue for kind without waiting for it to finish.
func (s *Synth) Play(kind core.EventKind) {
	if s == nil || s.muted {
		return
	}
	data, ok := s.pcm[kind]
	if !ok {
		return
	}
	s.ctx.NewPlayerFromBytes(data).Play()
}

// SetMuted silences or restores the cues.
func (s *Synth) SetMuted(muted bool) {
	s.muted = muted
}

// renderCue synthesizes c as 16-bit little-endian stereo PCM with a
// linear fade-out, so every cue ends in silence.
func renderCue(c cue, rate int) []byte {
	frames := int(c.length.Seconds() * float64(rate))
	buf := make([]byte, frames*4)

	phase := 0.0
	for i := range frames {
		t := float64(i) / float64(frames)
		freq := c.from + (c.to-c.from)*t
		phase += 2 * math.Pi * freq / float64(rate)

		env := 1 - t
		v := int16(math.Sin(phase) * env * c.volume * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
