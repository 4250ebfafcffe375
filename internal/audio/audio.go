package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return errors.Wrap(err, "init speaker")
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// sequence plays tones back to back
func sequence(freqs []float64, each time.Duration) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = squareWave(f, each)
	}
	return beep.Seq(parts...)
}

func play(s beep.Streamer) {
	if !initialized {
		return
	}
	speaker.Play(s)
}

// PlayPaddleHit plays the sound for ball hitting a paddle
func PlayPaddleHit() {
	play(squareWave(880, 50*time.Millisecond))
}

// PlayWallBounce plays the sound for ball hitting a wall
func PlayWallBounce() {
	play(squareWave(440, 30*time.Millisecond))
}

// PlayScore plays the sound when a player scores
func PlayScore() {
	play(sequence([]float64{660, 440, 330}, 100*time.Millisecond))
}

// PlayGameOver plays a rising fanfare for the end of the match
func PlayGameOver() {
	play(sequence([]float64{330, 440, 550, 660, 880}, 120*time.Millisecond))
}
