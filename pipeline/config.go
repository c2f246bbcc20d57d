package pipeline

import (
	"runtime"
	"time"
)

// Config holds the orchestrator's tuning parameters.
type Config struct {
	// MaxConcurrentJobs bounds how many jobs execute stages in parallel.
	// Jobs beyond the bound queue; they are never rejected.
	MaxConcurrentJobs int

	// BatchPoolSize bounds parallel sub-work within a single stage
	// (embedding batches, image linking).
	BatchPoolSize int

	// BatchSize is how many chunks are embedded per collaborator call.
	BatchSize int

	// RetryAttempts is how many retries follow a failed collaborator call.
	// A stage makes at most RetryAttempts+1 calls.
	RetryAttempts int

	// RetryBaseDelay is the delay before the first retry; it doubles on
	// each subsequent retry up to RetryMaxDelay.
	RetryBaseDelay time.Duration

	// RetryMaxDelay caps the backoff delay.
	RetryMaxDelay time.Duration

	// CallTimeout bounds every external collaborator call. A timeout counts
	// as a retryable failure.
	CallTimeout time.Duration

	// ChunkSize and ChunkOverlap control the text splitter.
	ChunkSize    int
	ChunkOverlap int

	// FailureTolerance is the fraction of a stage's batched sub-work
	// allowed to fail while still completing the stage. 0 means any batch
	// failure fails the stage.
	FailureTolerance float64
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	batchPool := runtime.NumCPU() / 2
	if batchPool < 1 {
		batchPool = 1
	}

	return &Config{
		MaxConcurrentJobs: 4,
		BatchPoolSize:     batchPool,
		BatchSize:         32,
		RetryAttempts:     3,
		RetryBaseDelay:    500 * time.Millisecond,
		RetryMaxDelay:     10 * time.Second,
		CallTimeout:       60 * time.Second,
		ChunkSize:         1200,
		ChunkOverlap:      120,
		FailureTolerance:  0,
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.MaxConcurrentJobs < 1 || c.BatchPoolSize < 1 || c.BatchSize < 1 {
		return ErrInvalidConfig
	}
	if c.RetryAttempts < 0 {
		return ErrInvalidConfig
	}
	if c.ChunkSize < 1 || c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return ErrInvalidConfig
	}
	if c.FailureTolerance < 0 || c.FailureTolerance > 1 {
		return ErrInvalidConfig
	}
	return nil
}
