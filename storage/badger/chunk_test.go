package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

func TestChunkBasics(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	docID := core.ID(42)
	added, err := repos.Chunks.AddChunks(ctx,
		&core.Chunk{DocumentId: docID, Index: 0, Contents: "First section."},
		&core.Chunk{DocumentId: docID, Index: 1, Contents: "Second section."},
	)
	if err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(added))
	}
	for _, chunk := range added {
		if chunk.Id == 0 {
			t.Fatal("Expected content-derived ID")
		}
	}

	// Identical content yields identical IDs
	same, err := repos.Chunks.AddChunks(ctx, &core.Chunk{DocumentId: docID, Index: 0, Contents: "First section."})
	if err != nil {
		t.Fatalf("Failed to re-add chunk: %v", err)
	}
	if same[0].Id != added[0].Id {
		t.Fatal("Expected deterministic content ID")
	}

	byDoc, err := repos.Chunks.GetChunksByDocument(ctx, docID)
	if err != nil {
		t.Fatalf("Failed to get chunks by document: %v", err)
	}
	if len(byDoc) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(byDoc))
	}
	// Reading order
	if byDoc[0].Index != 0 || byDoc[1].Index != 1 {
		t.Fatalf("Expected chunks in reading order, got %d, %d", byDoc[0].Index, byDoc[1].Index)
	}
}

func TestChunkUpdateVectorAndMetrics(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	added, err := repos.Chunks.AddChunks(ctx, &core.Chunk{DocumentId: 7, Index: 0, Contents: "Installation notes."})
	if err != nil {
		t.Fatalf("Failed to add chunk: %v", err)
	}

	chunk := added[0]
	chunk.Vector = []float32{0.6, 0.8}
	chunk.Metrics = map[string]float64{"coherence": 0.9}
	if _, err := repos.Chunks.UpdateChunks(ctx, chunk); err != nil {
		t.Fatalf("Failed to update chunk: %v", err)
	}

	retrieved, err := repos.Chunks.GetChunk(ctx, chunk.Id)
	if err != nil {
		t.Fatalf("Failed to get chunk: %v", err)
	}
	if len(retrieved.Vector) != 2 {
		t.Fatalf("Expected vector of length 2, got %d", len(retrieved.Vector))
	}
	if retrieved.Metrics["coherence"] != 0.9 {
		t.Fatalf("Expected coherence 0.9, got %v", retrieved.Metrics["coherence"])
	}

	_, err = repos.Chunks.UpdateChunks(ctx, &core.Chunk{Id: 9999, DocumentId: 7, Contents: "ghost"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteChunksByDocument(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Chunks.AddChunks(ctx,
		&core.Chunk{DocumentId: 1, Index: 0, Contents: "Doc one chunk."},
		&core.Chunk{DocumentId: 2, Index: 0, Contents: "Doc two chunk."},
	)
	if err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	if err := repos.Chunks.DeleteChunksByDocument(ctx, 1); err != nil {
		t.Fatalf("Failed to delete chunks: %v", err)
	}

	gone, err := repos.Chunks.GetChunksByDocument(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get chunks: %v", err)
	}
	if len(gone) != 0 {
		t.Fatalf("Expected no chunks for document 1, got %d", len(gone))
	}

	kept, err := repos.Chunks.GetChunksByDocument(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get chunks: %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("Expected 1 chunk for document 2, got %d", len(kept))
	}
}
