// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package relationship

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/similarity"
	"github.com/poiesic/docflow/storage"
)

// Edge labels for image-to-chunk links.
const (
	LabelPrimary = "primary"
	LabelRelated = "related"
)

// Builder discovers relationships between a document's chunks and images
// and persists them as typed edges.
type Builder struct {
	edges  storage.EdgeRepository
	config *Config
	logger *slog.Logger
}

// BuilderOption is a functional option for configuring a Builder.
type BuilderOption func(*Builder)

// WithBuilderLogger sets the logger used by the builder.
func WithBuilderLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a relationship builder writing edges to the given
// repository. A nil config falls back to DefaultConfig.
func NewBuilder(edges storage.EdgeRepository, config *Config, opts ...BuilderOption) (*Builder, error) {
	if edges == nil {
		return nil, ErrEdgeRepositoryRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	builder := &Builder{
		edges:  edges,
		config: config,
		logger: slog.Default().With("component", "relationship-builder"),
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder, nil
}

// BuildChunkEdges produces and persists the sequential, semantic, and
// hierarchical edges for a document's chunks. Chunks must be in reading
// order. Returns all edges written.
func (b *Builder) BuildChunkEdges(ctx context.Context, chunks []*core.Chunk) ([]*core.RelationshipEdge, error) {
	if len(chunks) < 2 {
		return nil, nil
	}

	edges := b.sequentialEdges(chunks)
	edges = append(edges, b.semanticEdges(chunks)...)
	edges = append(edges, b.hierarchicalEdges(chunks)...)

	if err := b.edges.AddEdges(ctx, edges...); err != nil {
		return nil, fmt.Errorf("failed to persist chunk edges: %w", err)
	}

	b.logger.Debug("built chunk edges",
		"chunks", len(chunks),
		"edges", len(edges))
	return edges, nil
}

// sequentialEdges links each consecutive chunk pair in reading order.
// Exactly len(chunks)-1 directed edges.
func (b *Builder) sequentialEdges(chunks []*core.Chunk) []*core.RelationshipEdge {
	edges := make([]*core.RelationshipEdge, 0, len(chunks)-1)
	for i := 0; i < len(chunks)-1; i++ {
		edges = append(edges, &core.RelationshipEdge{
			SourceId:   chunks[i].Id,
			TargetId:   chunks[i+1].Id,
			Type:       core.EdgeSequential,
			Confidence: b.config.SequentialConfidence,
			Strength:   b.config.SequentialConfidence,
			Validation: core.ValidationUnreviewed,
		})
	}
	return edges
}

// semanticEdges compares a strided sample of chunks pairwise by lexical
// similarity. Sampling bounds the quadratic comparison: sample size is
// min(n, SemanticSampleSize) with stride max(1, n/sample).
func (b *Builder) semanticEdges(chunks []*core.Chunk) []*core.RelationshipEdge {
	n := len(chunks)
	sample := n
	if sample > b.config.SemanticSampleSize {
		sample = b.config.SemanticSampleSize
	}
	stride := n / sample
	if stride < 1 {
		stride = 1
	}

	var sampled []*core.Chunk
	for i := 0; i < n && len(sampled) < sample; i += stride {
		sampled = append(sampled, chunks[i])
	}

	var edges []*core.RelationshipEdge
	for i := 0; i < len(sampled); i++ {
		for j := i + 1; j < len(sampled); j++ {
			score := similarity.Jaccard(sampled[i].Contents, sampled[j].Contents)
			if score <= b.config.SemanticThreshold {
				continue
			}
			edges = append(edges, &core.RelationshipEdge{
				SourceId:      sampled[i].Id,
				TargetId:      sampled[j].Id,
				Type:          core.EdgeSemantic,
				Confidence:    score,
				Strength:      score,
				Bidirectional: true,
				Validation:    core.ValidationUnreviewed,
			})
		}
	}
	return edges
}

// hierarchicalEdges links each chunk to the first later-occurring chunk at
// the next deeper hierarchy level present in the document.
func (b *Builder) hierarchicalEdges(chunks []*core.Chunk) []*core.RelationshipEdge {
	byDepth := map[int][]*core.Chunk{}
	for _, chunk := range chunks {
		byDepth[chunk.Depth] = append(byDepth[chunk.Depth], chunk)
	}

	depths := make([]int, 0, len(byDepth))
	for depth := range byDepth {
		depths = append(depths, depth)
	}
	slices.Sort(depths)

	var edges []*core.RelationshipEdge
	for i := 0; i < len(depths)-1; i++ {
		parents := byDepth[depths[i]]
		children := byDepth[depths[i+1]]

		for _, parent := range parents {
			for _, child := range children {
				if child.Index <= parent.Index {
					continue
				}
				edges = append(edges, &core.RelationshipEdge{
					SourceId:   parent.Id,
					TargetId:   child.Id,
					Type:       core.EdgeHierarchical,
					Confidence: b.config.HierarchicalConfidence,
					Strength:   b.config.HierarchicalConfidence,
					Validation: core.ValidationUnreviewed,
				})
				break
			}
		}
	}
	return edges
}

// LinkImage scores an image's embedding against every candidate chunk's
// embedding and replaces the image's entire edge set with the qualifying
// links, capped at ImageLinkCap strongest. Chunks or images without
// embeddings score 0 and simply produce no edge; an all-missing candidate
// set yields an empty edge set, not an error.
//
// The replacement is delete-then-insert and not atomic: a concurrent reader
// may observe a transient empty edge set.
func (b *Builder) LinkImage(ctx context.Context, image *core.Image, chunks []*core.Chunk) ([]*core.RelationshipEdge, error) {
	type scored struct {
		chunk *core.Chunk
		score float64
	}

	var candidates []scored
	for _, chunk := range chunks {
		score := cosineOrZero(image.Vector, chunk.Vector)
		if score > b.config.ImageLinkThreshold {
			candidates = append(candidates, scored{chunk: chunk, score: score})
		}
	}

	slices.SortFunc(candidates, func(a, b scored) int {
		if a.score > b.score {
			return -1
		}
		if a.score < b.score {
			return 1
		}
		return 0
	})
	if len(candidates) > b.config.ImageLinkCap {
		candidates = candidates[:b.config.ImageLinkCap]
	}

	edges := make([]*core.RelationshipEdge, 0, len(candidates))
	for _, c := range candidates {
		label := LabelRelated
		if c.score > b.config.ImagePrimaryThreshold {
			label = LabelPrimary
		}
		edges = append(edges, &core.RelationshipEdge{
			SourceId:   image.Id,
			TargetId:   c.chunk.Id,
			Type:       core.EdgeSemantic,
			Confidence: c.score,
			Strength:   c.score,
			Label:      label,
			Validation: core.ValidationUnreviewed,
		})
	}

	if err := b.edges.ReplaceEdgesForSource(ctx, image.Id, edges); err != nil {
		return nil, fmt.Errorf("failed to replace image edges: %w", err)
	}

	b.logger.Debug("linked image to chunks",
		"image", image.Id,
		"candidates", len(chunks),
		"edges", len(edges))
	return edges, nil
}

// cosineOrZero treats malformed vector pairs (missing, zero magnitude, or
// mismatched dimensions) as similarity 0 instead of failing.
func cosineOrZero(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	score, err := similarity.Cosine(a, b)
	if err != nil {
		return 0
	}
	return score
}
