// Package audio plays the short effects for eating and crashing.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = -1.5 // log2 gain applied to every effect
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a silent sound manager; call Initialize to open the device
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayEat plays a rising two-note chirp
func (sm *SoundManager) PlayEat() {
	low, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	high, err := generators.SineTone(sampleRate, 990)
	if err != nil {
		return
	}

	sm.play(beep.Seq(
		beep.Take(sampleRate.N(40*time.Millisecond), low),
		beep.Take(sampleRate.N(60*time.Millisecond), high),
	))
}

// PlayCrash plays a short low buzz
func (sm *SoundManager) PlayCrash() {
	sm.play(NewTone(110, 250*time.Millisecond, WaveSquare, sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: volume})
	speaker.Unlock()
}
