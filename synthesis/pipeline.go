package synthesis

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tsawler/cadence/model"
	"github.com/tsawler/cadence/text"
	"github.com/tsawler/cadence/timing"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 4

// Config controls pipeline execution.
type Config struct {
	// Workers bounds how many chunks are synthesized concurrently.
	// Non-positive values fall back to DefaultWorkers.
	Workers int

	// Logger receives per-chunk progress and failures. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// ChunkResult is the outcome of synthesizing and timing one chunk.
type ChunkResult struct {
	// ChunkID identifies the chunk.
	ChunkID int

	// Audio is the chunk's synthesized audio. Zero on error.
	Audio Audio

	// Timing is the chunk's local-timeline timing record. Zero on error.
	Timing model.ChunkTiming

	// Err is non-nil if synthesis failed or was cancelled.
	Err error
}

// Pipeline synthesizes planned chunks over a bounded worker pool and
// computes each chunk's word timings as soon as that chunk's audio duration
// is known. Timing computation for a chunk depends only on that chunk's own
// duration, so chunks complete independently and in any order.
type Pipeline struct {
	engine Engine
	cfg    Config
	log    *slog.Logger
}

// NewPipeline creates a pipeline around the given engine. Wrap the engine in
// a [CachingEngine] to reuse previously synthesized audio.
func NewPipeline(engine Engine, cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{engine: engine, cfg: cfg, log: log}
}

// Run synthesizes every chunk and returns one result per chunk, in chunk id
// order. A failed or cancelled chunk carries its error in its result;
// results completed before a cancellation remain valid. Run only returns a
// non-nil error when ctx was cancelled before all chunks finished.
func (p *Pipeline) Run(ctx context.Context, chunks []model.Chunk) ([]ChunkResult, error) {
	results := make([]ChunkResult, len(chunks))
	offsets := chunkOffsets(chunks)

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.process(ctx, chunks[i], offsets[i])
			}
		}()
	}

feed:
	for i := range chunks {
		select {
		case <-ctx.Done():
			for j := i; j < len(chunks); j++ {
				results[j] = ChunkResult{ChunkID: chunks[j].ID, Err: ctx.Err()}
			}
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results, ctx.Err()
}

// process synthesizes one chunk and computes its timings. The timing
// computation starts strictly after the chunk's own duration is measured.
func (p *Pipeline) process(ctx context.Context, chunk model.Chunk, startOffset int) ChunkResult {
	log := p.log.With("chunk_id", chunk.ID)

	audio, err := p.engine.Synthesize(ctx, chunk.Text)
	if err != nil {
		log.Error("synthesis failed", "error", err)
		return ChunkResult{ChunkID: chunk.ID, Err: err}
	}

	duration := audio.Duration()
	endOffset := startOffset + text.RuneLen(chunk.Text)
	result := ChunkResult{
		ChunkID: chunk.ID,
		Audio:   audio,
		Timing:  timing.ForChunk(chunk.Text, duration, startOffset, endOffset),
	}

	log.Debug("chunk timed", "duration", duration, "words", len(result.Timing.Words))
	return result
}

// chunkOffsets returns each chunk's starting character offset within the
// normalized document text, which for planned chunks is their single-space
// joined texts in id order.
func chunkOffsets(chunks []model.Chunk) []int {
	offsets := make([]int, len(chunks))
	cursor := 0
	for i, c := range chunks {
		offsets[i] = cursor
		cursor += text.RuneLen(c.Text) + 1
	}
	return offsets
}
