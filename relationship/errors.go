package relationship

import "errors"

var (
	// ErrInvalidSampleSize is returned when the semantic sample size is not positive.
	ErrInvalidSampleSize = errors.New("semantic sample size must be positive")

	// ErrInvalidLinkCap is returned when the image link cap is not positive.
	ErrInvalidLinkCap = errors.New("image link cap must be positive")

	// ErrInvalidThreshold is returned when a threshold is outside [0, 1].
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")

	// ErrEdgeRepositoryRequired is returned when an edge repository is not provided.
	ErrEdgeRepositoryRequired = errors.New("edge repository required")
)
