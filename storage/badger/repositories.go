package badger

import "github.com/poiesic/docflow/storage"

// Repositories bundles every repository over one backend.
type Repositories struct {
	Backend     *Backend
	Jobs        storage.JobRepository
	Checkpoints storage.CheckpointRepository
	Chunks      storage.ChunkRepository
	Images      storage.ImageRepository
	Products    storage.ProductRepository
	Assessments storage.AssessmentRepository
	Reviews     storage.ReviewTaskRepository
	Edges       storage.EdgeRepository
}

// NewRepositories creates every repository over an existing backend.
func NewRepositories(backend *Backend) (*Repositories, error) {
	jobs, err := NewJobRepository(backend)
	if err != nil {
		return nil, err
	}
	assessments, err := NewAssessmentRepository(backend)
	if err != nil {
		jobs.Close()
		return nil, err
	}
	reviews, err := NewReviewTaskRepository(backend)
	if err != nil {
		assessments.Close()
		jobs.Close()
		return nil, err
	}

	return &Repositories{
		Backend:     backend,
		Jobs:        jobs,
		Checkpoints: NewCheckpointRepository(backend),
		Chunks:      NewChunkRepository(backend),
		Images:      NewImageRepository(backend),
		Products:    NewProductRepository(backend),
		Assessments: assessments,
		Reviews:     reviews,
		Edges:       NewEdgeRepository(backend),
	}, nil
}

// Close releases every repository and the backend.
func (r *Repositories) Close() error {
	r.Reviews.Close()
	r.Assessments.Close()
	r.Jobs.Close()
	return r.Backend.Close()
}
