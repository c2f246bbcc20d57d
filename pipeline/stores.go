package pipeline

import (
	"context"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

// Stores bundles the repositories the orchestrator reads and writes.
type Stores struct {
	Jobs        storage.JobRepository
	Checkpoints storage.CheckpointRepository
	Chunks      storage.ChunkRepository
	Images      storage.ImageRepository
	Products    storage.ProductRepository
	Assessments storage.AssessmentRepository
	Reviews     storage.ReviewTaskRepository
	Edges       storage.EdgeRepository
}

// complete reports whether every repository is present.
func (s *Stores) complete() bool {
	return s != nil &&
		s.Jobs != nil && s.Checkpoints != nil && s.Chunks != nil &&
		s.Images != nil && s.Products != nil && s.Assessments != nil &&
		s.Reviews != nil && s.Edges != nil
}

// DocumentSource fetches raw document content for a reference. Keeping the
// fetch behind an interface lets resumed jobs re-read their document without
// the orchestrator holding content in memory across restarts.
type DocumentSource interface {
	// Fetch returns the raw content and a format hint ("markdown", "html",
	// "text", "ocr") for the referenced document.
	Fetch(ctx context.Context, ref core.DocumentRef) (contents string, format string, err error)
}
