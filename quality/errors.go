package quality

import "errors"

var (
	// ErrInvalidThreshold is returned when a configured threshold is outside [0, 1].
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")

	// ErrUnknownEntityType is returned when an entity type has no weight table.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrAssessmentRepositoryRequired is returned when an assessment repository is not provided.
	ErrAssessmentRepositoryRequired = errors.New("assessment repository required")

	// ErrReviewRepositoryRequired is returned when a review task repository is not provided.
	ErrReviewRepositoryRequired = errors.New("review task repository required")
)
