package badger

import (
	"context"
	"testing"

	"github.com/poiesic/docflow/core"
)

func TestImageBasics(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	added, err := repos.Images.AddImages(ctx,
		&core.Image{DocumentId: 5, Page: 2, Caption: "Wiring diagram", Format: "png", Width: 640, Height: 480},
		&core.Image{DocumentId: 5, Page: 1, Caption: "Front panel", Format: "jpeg"},
	)
	if err != nil {
		t.Fatalf("Failed to add images: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("Expected 2 images, got %d", len(added))
	}

	byDoc, err := repos.Images.GetImagesByDocument(ctx, 5)
	if err != nil {
		t.Fatalf("Failed to get images by document: %v", err)
	}
	if len(byDoc) != 2 {
		t.Fatalf("Expected 2 images, got %d", len(byDoc))
	}
	// Page order
	if byDoc[0].Page != 1 || byDoc[1].Page != 2 {
		t.Fatalf("Expected images in page order, got %d, %d", byDoc[0].Page, byDoc[1].Page)
	}
}

func TestImageUpdateVector(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	added, err := repos.Images.AddImages(ctx, &core.Image{DocumentId: 5, Page: 1, Caption: "Pump", Format: "png"})
	if err != nil {
		t.Fatalf("Failed to add image: %v", err)
	}

	image := added[0]
	image.Vector = []float32{0.6, 0.8}
	image.Metrics = map[string]float64{"relevance": 0.7}
	if _, err := repos.Images.UpdateImages(ctx, image); err != nil {
		t.Fatalf("Failed to update image: %v", err)
	}

	retrieved, err := repos.Images.GetImage(ctx, image.Id)
	if err != nil {
		t.Fatalf("Failed to get image: %v", err)
	}
	if len(retrieved.Vector) != 2 {
		t.Fatalf("Expected vector of length 2, got %d", len(retrieved.Vector))
	}
	if retrieved.Metrics["relevance"] != 0.7 {
		t.Fatalf("Expected relevance 0.7, got %v", retrieved.Metrics["relevance"])
	}
}

func TestDeleteImagesByDocument(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Images.AddImages(ctx,
		&core.Image{DocumentId: 1, Page: 1, Caption: "Keep out", Format: "png"},
		&core.Image{DocumentId: 2, Page: 1, Caption: "Keep in", Format: "png"},
	)
	if err != nil {
		t.Fatalf("Failed to add images: %v", err)
	}

	if err := repos.Images.DeleteImagesByDocument(ctx, 1); err != nil {
		t.Fatalf("Failed to delete images: %v", err)
	}

	gone, err := repos.Images.GetImagesByDocument(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get images: %v", err)
	}
	if len(gone) != 0 {
		t.Fatalf("Expected no images for document 1, got %d", len(gone))
	}

	kept, err := repos.Images.GetImagesByDocument(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get images: %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("Expected 1 image for document 2, got %d", len(kept))
	}
}
