package storage

import (
	"context"
	"time"

	"github.com/poiesic/docflow/core"
)

// JobFilter narrows job listings. Zero values mean "any".
type JobFilter struct {
	Workspace string
	Status    core.JobStatus
	Since     time.Time
	Until     time.Time
	Limit     int
}

// ReviewTaskFilter narrows review task listings. Zero values mean "any".
type ReviewTaskFilter struct {
	Status     core.ReviewStatus
	Priority   core.ReviewPriority
	EntityType core.EntityType
	Limit      int
}

// JobRepository provides operations for managing pipeline jobs.
// Implementations must be thread-safe and support concurrent access.
type JobRepository interface {
	// AddJob persists a new job. For jobs with ID=0, generates an ID from
	// sequence. Sets CreatedAt/UpdatedAt timestamps.
	// Returns the job with generated ID and timestamps populated.
	AddJob(ctx context.Context, job *core.Job) (*core.Job, error)

	// UpdateJob persists changes to an existing job.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if the job doesn't exist.
	UpdateJob(ctx context.Context, job *core.Job) (*core.Job, error)

	// GetJob retrieves a single job by ID.
	// Returns ErrNotFound if the job doesn't exist.
	GetJob(ctx context.Context, id core.ID) (*core.Job, error)

	// ListJobs retrieves jobs matching the filter, most recent first.
	ListJobs(ctx context.Context, filter JobFilter) ([]*core.Job, error)

	// Close releases resources held by the repository.
	Close() error
}

// CheckpointRepository persists per-job stage cursors for crash-safe resumption.
type CheckpointRepository interface {
	// SaveCheckpoint persists a checkpoint for a job, replacing any prior one.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a job.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, jobID core.ID) (*core.Checkpoint, error)

	// DeleteCheckpoint removes a job's checkpoint. Missing checkpoints are not an error.
	DeleteCheckpoint(ctx context.Context, jobID core.ID) error
}

// ChunkRepository provides operations for managing document chunks.
type ChunkRepository interface {
	// AddChunks persists chunks. For chunks with ID=0, derives a
	// content-based ID. Sets InsertedAt/UpdatedAt timestamps.
	AddChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error)

	// UpdateChunks persists changes to existing chunks (vectors, metrics).
	// Returns ErrNotFound if any chunk doesn't exist.
	UpdateChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error)

	// GetChunk retrieves a single chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error)

	// GetChunksByDocument retrieves all chunks for a document in reading order.
	GetChunksByDocument(ctx context.Context, documentID core.ID) ([]*core.Chunk, error)

	// DeleteChunksByDocument removes all chunks for a document.
	DeleteChunksByDocument(ctx context.Context, documentID core.ID) error

	Close() error
}

// ImageRepository provides operations for managing document images.
type ImageRepository interface {
	AddImages(ctx context.Context, images ...*core.Image) ([]*core.Image, error)
	UpdateImages(ctx context.Context, images ...*core.Image) ([]*core.Image, error)

	// GetImage returns ErrNotFound if the image doesn't exist.
	GetImage(ctx context.Context, id core.ID) (*core.Image, error)

	// GetImagesByDocument retrieves all images for a document in page order.
	GetImagesByDocument(ctx context.Context, documentID core.ID) ([]*core.Image, error)

	DeleteImagesByDocument(ctx context.Context, documentID core.ID) error

	Close() error
}

// ProductRepository provides operations for managing enriched product entities.
type ProductRepository interface {
	AddProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error)
	UpdateProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error)

	// GetProduct returns ErrNotFound if the product doesn't exist.
	GetProduct(ctx context.Context, id core.ID) (*core.Product, error)

	GetProductsByDocument(ctx context.Context, documentID core.ID) ([]*core.Product, error)

	// DeleteProductsByDocument removes all products for a document.
	DeleteProductsByDocument(ctx context.Context, documentID core.ID) error

	Close() error
}

// AssessmentRepository provides operations for managing quality assessments.
type AssessmentRepository interface {
	// AddAssessment persists an assessment. For assessments with ID=0,
	// generates an ID from sequence. Sets AssessedAt if unset.
	AddAssessment(ctx context.Context, assessment *core.QualityAssessment) (*core.QualityAssessment, error)

	// GetAssessment returns ErrNotFound if the assessment doesn't exist.
	GetAssessment(ctx context.Context, id core.ID) (*core.QualityAssessment, error)

	// ListAssessmentsByEntity retrieves all assessments for an entity,
	// most recent first.
	ListAssessmentsByEntity(ctx context.Context, entityID core.ID) ([]*core.QualityAssessment, error)

	Close() error
}

// ReviewTaskRepository provides operations for managing human-review tasks.
type ReviewTaskRepository interface {
	// AddTask persists a new task. For tasks with ID=0, generates an ID
	// from sequence. Sets CreatedAt.
	AddTask(ctx context.Context, task *core.ReviewTask) (*core.ReviewTask, error)

	// UpdateTask persists changes to an existing task.
	// Returns ErrNotFound if the task doesn't exist.
	UpdateTask(ctx context.Context, task *core.ReviewTask) (*core.ReviewTask, error)

	// GetTask returns ErrNotFound if the task doesn't exist.
	GetTask(ctx context.Context, id core.ID) (*core.ReviewTask, error)

	// GetTaskByAssessment retrieves the task created for an assessment.
	// Returns nil, nil if no task references the assessment.
	GetTaskByAssessment(ctx context.Context, assessmentID core.ID) (*core.ReviewTask, error)

	// ListTasks retrieves tasks matching the filter, oldest first.
	ListTasks(ctx context.Context, filter ReviewTaskFilter) ([]*core.ReviewTask, error)

	Close() error
}

// EdgeRepository provides operations for managing relationship edges.
// Edges are unique per (source, target, type); adding an existing
// combination overwrites it.
type EdgeRepository interface {
	AddEdges(ctx context.Context, edges ...*core.RelationshipEdge) error

	// GetEdgesBySource retrieves all edges originating from an entity.
	GetEdgesBySource(ctx context.Context, sourceID core.ID) ([]*core.RelationshipEdge, error)

	// DeleteEdgesBySource removes all edges originating from an entity.
	DeleteEdgesBySource(ctx context.Context, sourceID core.ID) error

	// ReplaceEdgesForSource removes every edge originating from sourceID and
	// inserts the given set. Delete and insert run in separate transactions:
	// a concurrent reader may observe a transient empty edge set.
	ReplaceEdgesForSource(ctx context.Context, sourceID core.ID, edges []*core.RelationshipEdge) error

	Close() error
}
