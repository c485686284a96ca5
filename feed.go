package mdtype

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"
)

// Chunk sizes of the reference token stream, in runes.
const (
	DefaultMinChunk = 2
	DefaultMaxChunk = 20
	DefaultDelay    = 20 * time.Millisecond
)

// Chunks splits text into runs of minLen to maxLen runes, like a model
// emitting oddly sized tokens. A nil rng uses the global source.
func Chunks(text string, minLen, maxLen int, rng *rand.Rand) iter.Seq[string] {
	minLen, maxLen = chunkBounds(minLen, maxLen)
	return func(yield func(string) bool) {
		rest := text
		for len(rest) > 0 {
			n := chunkLen(rng, minLen, maxLen)
			end := 0
			for i := 0; i < n && end < len(rest); i++ {
				_, size := utf8.DecodeRuneInString(rest[end:])
				end += size
			}
			if !yield(rest[:end]) {
				return
			}
			rest = rest[end:]
		}
	}
}

// ReadChunks is like Chunks but pulls runes lazily from r. Invalid UTF-8 is
// passed through byte by byte as U+FFFD.
func ReadChunks(r io.Reader, minLen, maxLen int, rng *rand.Rand) iter.Seq2[string, error] {
	minLen, maxLen = chunkBounds(minLen, maxLen)
	return func(yield func(string, error) bool) {
		br, ok := r.(io.RuneReader)
		if !ok {
			br = bufio.NewReader(r)
		}
		var b strings.Builder
		for {
			n := chunkLen(rng, minLen, maxLen)
			b.Reset()
			var readErr error
			for i := 0; i < n; i++ {
				rr, _, err := br.ReadRune()
				if err != nil {
					readErr = err
					break
				}
				b.WriteRune(rr)
			}
			if b.Len() > 0 {
				if !yield(b.String(), nil) {
					return
				}
			}
			if readErr == io.EOF {
				return
			}
			if readErr != nil {
				yield("", readErr)
				return
			}
		}
	}
}

func chunkBounds(minLen, maxLen int) (int, int) {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	return minLen, maxLen
}

func chunkLen(rng *rand.Rand, minLen, maxLen int) int {
	span := maxLen - minLen + 1
	if span <= 1 {
		return minLen
	}
	if rng == nil {
		return minLen + rand.IntN(span)
	}
	return minLen + rng.IntN(span)
}

// SimulateRequest configures Simulate.
type SimulateRequest struct {
	Reader   io.Reader
	Target   Target
	MinChunk int
	MaxChunk int
	Delay    time.Duration
	Rand     *rand.Rand
	Options  []SessionOption
	// OnChunk, if set, runs after each chunk has been applied.
	OnChunk func(chunk string)
}

// Simulate streams Reader into Target in random chunks, pausing Delay between
// chunks. Cancelling ctx stops the feed; the target keeps what it has.
func Simulate(ctx context.Context, req SimulateRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("simulate: Reader is nil")
	}
	if req.Target == nil {
		return fmt.Errorf("simulate: Target is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	minLen, maxLen := req.MinChunk, req.MaxChunk
	if minLen == 0 && maxLen == 0 {
		minLen, maxLen = DefaultMinChunk, DefaultMaxChunk
	}
	sess := NewSession(req.Target, req.Options...)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	first := true
	for chunk, err := range ReadChunks(req.Reader, minLen, maxLen, req.Rand) {
		if err != nil {
			return fmt.Errorf("simulate: read: %w", err)
		}
		if !first && req.Delay > 0 {
			if timer == nil {
				timer = time.NewTimer(req.Delay)
			} else {
				timer.Reset(req.Delay)
			}
			select {
			case <-ctx.Done():
				return fmt.Errorf("simulate: %w", ctx.Err())
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		first = false
		if _, err := sess.WriteString(chunk); err != nil {
			return fmt.Errorf("simulate: write: %w", err)
		}
		if req.OnChunk != nil {
			req.OnChunk(chunk)
		}
	}
	if err := sess.Close(); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	return nil
}
