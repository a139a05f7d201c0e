package synthesis

import (
	"context"
	"fmt"

	"github.com/tsawler/cadence/index"
)

// Audio is one chunk's synthesized audio with the sample geometry needed to
// measure its duration.
type Audio struct {
	// Data is the encoded audio.
	Data []byte

	// SampleRate is the sample rate in Hz.
	SampleRate int

	// Frames is the number of audio frames.
	Frames int
}

// Duration returns the audio length in seconds, derived from the frame
// count and sample rate. Zero or missing sample geometry yields 0.
func (a Audio) Duration() float64 {
	if a.SampleRate <= 0 || a.Frames <= 0 {
		return 0
	}
	return float64(a.Frames) / float64(a.SampleRate)
}

// Engine converts text to speech. Implementations typically shell out to a
// TTS subprocess or call a synthesis SDK, so Synthesize takes a context and
// may have real latency. Implementations must be safe for concurrent use;
// the pipeline invokes Synthesize from multiple workers.
type Engine interface {
	Synthesize(ctx context.Context, text string) (Audio, error)
}

// Measurer recovers sample geometry from encoded audio bytes, for audio
// that comes back from a cache rather than fresh from an engine.
type Measurer interface {
	Measure(data []byte) (Audio, error)
}

// Key returns the content-addressed cache key for a synthesis request:
// the digest of the text together with the voice and speed that shape the
// resulting audio.
func Key(text, voice string, speed float64) string {
	return index.Hash(fmt.Appendf(nil, "%s-%s-%g", text, voice, speed))
}

// CachingEngine wraps an Engine with a content-addressed audio cache.
// A cache hit is re-measured to recover its duration; a miss is synthesized
// and stored. It implements Engine and is safe for concurrent use when its
// collaborators are.
type CachingEngine struct {
	Inner   Engine
	Cache   Cache
	Measure Measurer

	// Voice and Speed identify the synthesis configuration in cache keys.
	Voice string
	Speed float64
}

// Synthesize returns cached audio when available, synthesizing and storing
// it otherwise.
func (c *CachingEngine) Synthesize(ctx context.Context, text string) (Audio, error) {
	key := Key(text, c.Voice, c.Speed)

	if data, ok := c.Cache.Get(key); ok {
		audio, err := c.Measure.Measure(data)
		if err != nil {
			return Audio{}, fmt.Errorf("measure cached audio: %w", err)
		}
		return audio, nil
	}

	audio, err := c.Inner.Synthesize(ctx, text)
	if err != nil {
		return Audio{}, err
	}
	c.Cache.Put(key, audio.Data)
	return audio, nil
}
