// Package audio plays short feedback tones for selection events.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone frequencies and lengths per feedback event
const (
	clickFreq = 660
	emitFreq  = 880
	denyFreq  = 220

	clickLen = 30 * time.Millisecond
	emitLen  = 50 * time.Millisecond
	denyLen  = 80 * time.Millisecond
)

// Engine generates feedback tones through the speaker.
// It implements the editor's Chime capability
type Engine struct {
	initialized bool
	muted       atomic.Bool
}

// NewEngine initializes the speaker. The session runs without sound when
// initialization fails, so callers may treat the error as non-fatal
func NewEngine(enabled bool) (*Engine, error) {
	e := &Engine{}
	e.muted.Store(!enabled)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	e.initialized = true
	return e, nil
}

func (e *Engine) play(freq float64, length time.Duration) {
	if !e.initialized || e.muted.Load() {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(length), sine))
}

// Click plays the branch-select tone
func (e *Engine) Click() {
	e.play(clickFreq, clickLen)
}

// Emit plays the character-completed tone
func (e *Engine) Emit() {
	e.play(emitFreq, emitLen)
}

// Deny plays the rejected-input tone
func (e *Engine) Deny() {
	e.play(denyFreq, denyLen)
}

// ToggleMute flips the mute state and reports whether sound is now on
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return !muted
}

// IsMuted reports whether feedback is currently muted
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// Close shuts the speaker down
func (e *Engine) Close() {
	if e.initialized {
		speaker.Close()
	}
}
