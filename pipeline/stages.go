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


package pipeline

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/poiesic/docflow/ai"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/similarity"
	"github.com/tmc/langchaingo/textsplitter"
)

// Stage names. A job's stage list is any ordered subset of these.
const (
	StageExtract = "extract"
	StageChunk   = "chunk"
	StageEmbed   = "embed"
	StageEnrich  = "enrich"
	StageLink    = "link"
	StageAssess  = "assess"
)

// DefaultStages is the full processing sequence.
func DefaultStages() []string {
	return []string{StageExtract, StageChunk, StageEmbed, StageEnrich, StageLink, StageAssess}
}

// Artifact keys carried between stages through the checkpoint.
const (
	artifactText   = "text"
	artifactTables = "tables"
	artifactFormat = "format"
)

// jobRun is the in-flight state of one job's stage sequence.
type jobRun struct {
	job       *core.Job
	docID     core.ID
	artifacts map[string]string
}

// stageHandler executes one stage. Returned metrics are recorded on the
// stage; handlers must tolerate partially applied side effects from a
// previous crashed run of the same stage.
type stageHandler func(ctx context.Context, run *jobRun) (map[string]float64, error)

func (o *Orchestrator) handlerFor(stage string) (stageHandler, bool) {
	switch stage {
	case StageExtract:
		return o.stageExtract, true
	case StageChunk:
		return o.stageChunk, true
	case StageEmbed:
		return o.stageEmbed, true
	case StageEnrich:
		return o.stageEnrich, true
	case StageLink:
		return o.stageLink, true
	case StageAssess:
		return o.stageAssess, true
	}
	return nil, false
}

// stageExtract fetches the raw document and converts it to structured form.
// Extracted images are persisted immediately; the cleaned text and tables
// travel to later stages as checkpoint artifacts.
func (o *Orchestrator) stageExtract(ctx context.Context, run *jobRun) (map[string]float64, error) {
	contents, format, err := o.source.Fetch(ctx, run.job.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}

	var extraction *ai.ExtractionResult
	attempts, err := o.retryCall(ctx, func(callCtx context.Context) error {
		var callErr error
		extraction, callErr = o.provider.DocumentExtractor().ExtractDocument(callCtx, contents, format)
		return callErr
	})
	if err != nil {
		return map[string]float64{"attempts": float64(attempts)}, fmt.Errorf("%w: %v", core.ErrCollaborator, err)
	}

	// A re-run after a crash replaces the document's images wholesale.
	if err := o.stores.Images.DeleteImagesByDocument(ctx, run.docID); err != nil {
		return nil, err
	}
	images := make([]*core.Image, len(extraction.Images))
	for i, img := range extraction.Images {
		images[i] = &core.Image{
			DocumentId: run.docID,
			Page:       img.Page,
			Caption:    img.Caption,
			OCRText:    img.OCRText,
			Format:     img.Format,
			Width:      img.Width,
			Height:     img.Height,
		}
	}
	if len(images) > 0 {
		if _, err := o.stores.Images.AddImages(ctx, images...); err != nil {
			return nil, err
		}
	}

	run.artifacts[artifactText] = extraction.Text
	run.artifacts[artifactTables] = strings.Join(extraction.Tables, "\n\n")
	run.artifacts[artifactFormat] = format

	return map[string]float64{
		"attempts": float64(attempts),
		"pages":    float64(len(extraction.Pages)),
		"images":   float64(len(extraction.Images)),
		"tables":   float64(len(extraction.Tables)),
		"chars":    float64(len(extraction.Text)),
	}, nil
}

// stageChunk splits the extracted text into ordered chunks with a heading
// derived hierarchy depth.
func (o *Orchestrator) stageChunk(ctx context.Context, run *jobRun) (map[string]float64, error) {
	text, ok := run.artifacts[artifactText]
	if !ok || text == "" {
		return nil, core.ErrEmptyContents
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(o.config.ChunkSize),
		textsplitter.WithChunkOverlap(o.config.ChunkOverlap),
	)
	pieces, err := splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to split text: %w", err)
	}

	// A re-run after a crash replaces the document's chunks wholesale.
	if err := o.stores.Chunks.DeleteChunksByDocument(ctx, run.docID); err != nil {
		return nil, err
	}

	chunks := make([]*core.Chunk, len(pieces))
	depth := 1
	for i, piece := range pieces {
		if level := headingDepth(piece); level > 0 {
			depth = level
		}
		chunks[i] = &core.Chunk{
			DocumentId: run.docID,
			Index:      i,
			Contents:   piece,
			Depth:      depth,
		}
	}
	if _, err := o.stores.Chunks.AddChunks(ctx, chunks...); err != nil {
		return nil, err
	}

	return map[string]float64{"chunks": float64(len(chunks))}, nil
}

// headingDepth returns the markdown heading level of the first heading line
// in the piece, or 0 if it has none.
func headingDepth(piece string) int {
	for _, line := range strings.Split(piece, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		if level < len(trimmed) && trimmed[level] == ' ' {
			return level
		}
	}
	return 0
}

// stageEmbed generates embeddings for the document's chunks and images.
// Chunk batches fan out on the batch pool and fully join before the stage
// finishes; per-item failures fail the stage unless they stay within the
// configured tolerance.
func (o *Orchestrator) stageEmbed(ctx context.Context, run *jobRun) (map[string]float64, error) {
	chunks, err := o.stores.Chunks.GetChunksByDocument(ctx, run.docID)
	if err != nil {
		return nil, err
	}
	images, err := o.stores.Images.GetImagesByDocument(ctx, run.docID)
	if err != nil {
		return nil, err
	}

	var (
		mu            sync.Mutex
		wg            sync.WaitGroup
		totalAttempts int
		failedItems   int
		batchErr      error
	)

	embedBatch := func(batch []*core.Chunk) {
		defer wg.Done()

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Contents
		}

		var vectors [][]float32
		attempts, err := o.retryCall(ctx, func(callCtx context.Context) error {
			var callErr error
			vectors, callErr = o.provider.Embedder().EmbedTexts(callCtx, texts)
			return callErr
		})

		mu.Lock()
		defer mu.Unlock()
		totalAttempts += attempts
		if err == nil && len(vectors) != len(batch) {
			err = fmt.Errorf("embedding count mismatch: expected %d, got %d", len(batch), len(vectors))
		}
		if err != nil {
			failedItems += len(batch)
			if batchErr == nil {
				batchErr = err
			}
			return
		}
		for i, chunk := range batch {
			chunk.Vector = similarity.Normalize(vectors[i])
		}
	}

	for start := 0; start < len(chunks); start += o.config.BatchSize {
		end := start + o.config.BatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]
		wg.Add(1)
		if err := o.batchPool.Submit(func() { embedBatch(batch) }); err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()

	embedded := 0
	for _, chunk := range chunks {
		if len(chunk.Vector) > 0 {
			embedded++
		}
	}
	if len(chunks) > 0 {
		if _, err := o.stores.Chunks.UpdateChunks(ctx, chunks...); err != nil {
			return nil, err
		}
	}

	// Image embeddings run inline; documents rarely carry enough images to
	// warrant fan-out.
	for _, image := range images {
		img := image
		attempts, err := o.retryCall(ctx, func(callCtx context.Context) error {
			vector, callErr := o.provider.Embedder().EmbedImage(callCtx, img.Caption, img.OCRText)
			if callErr != nil {
				return callErr
			}
			img.Vector = similarity.Normalize(vector)
			return nil
		})
		totalAttempts += attempts
		if err != nil {
			failedItems++
			if batchErr == nil {
				batchErr = err
			}
			continue
		}
		setEmbeddingMetrics(&img.Metrics, img.Vector)
	}
	if len(images) > 0 {
		if _, err := o.stores.Images.UpdateImages(ctx, images...); err != nil {
			return nil, err
		}
	}

	metrics := map[string]float64{
		"attempts": float64(totalAttempts),
		"embedded": float64(embedded),
		"failures": float64(failedItems),
	}

	totalItems := len(chunks) + len(images)
	if failedItems > 0 && totalItems > 0 {
		if float64(failedItems)/float64(totalItems) > o.config.FailureTolerance {
			return metrics, fmt.Errorf("%w: %d of %d items (%v)", ErrBatchFailures, failedItems, totalItems, batchErr)
		}
		o.logger.Warn("embedding failures within tolerance",
			"job", run.job.Id,
			"failed", failedItems,
			"total", totalItems)
	}
	return metrics, nil
}

// stageEnrich extracts product entities from the document text, embeds
// them, and computes the per-entity quality metrics that the assess stage
// will score.
func (o *Orchestrator) stageEnrich(ctx context.Context, run *jobRun) (map[string]float64, error) {
	text := run.artifacts[artifactText]
	if tables := run.artifacts[artifactTables]; tables != "" {
		text = text + "\n\n" + tables
	}

	var extracted []ai.ExtractedProduct
	attempts, err := o.retryCall(ctx, func(callCtx context.Context) error {
		var callErr error
		extracted, callErr = o.provider.ProductExtractor().ExtractProducts(callCtx, text)
		return callErr
	})
	if err != nil {
		return map[string]float64{"attempts": float64(attempts)}, fmt.Errorf("%w: %v", core.ErrCollaborator, err)
	}

	// A re-run after a crash replaces the document's products wholesale.
	if err := o.stores.Products.DeleteProductsByDocument(ctx, run.docID); err != nil {
		return nil, err
	}

	products := make([]*core.Product, 0, len(extracted))
	for _, p := range extracted {
		product := &core.Product{
			DocumentId: run.docID,
			Name:       p.Name,
			Attributes: p.Attributes,
			Metrics:    productMetrics(p.Name, p.Attributes, p.Confidence),
		}

		embedAttempts, err := o.retryCall(ctx, func(callCtx context.Context) error {
			vector, callErr := o.provider.Embedder().EmbedText(callCtx, productText(product))
			if callErr != nil {
				return callErr
			}
			product.Vector = similarity.Normalize(vector)
			return nil
		})
		attempts += embedAttempts
		if err != nil {
			o.logger.Warn("failed to embed product", "product", product.Name, "err", err)
		}
		setEmbeddingMetrics(&product.Metrics, product.Vector)
		products = append(products, product)
	}
	if len(products) > 0 {
		if _, err := o.stores.Products.AddProducts(ctx, products...); err != nil {
			return nil, err
		}
	}

	// Chunk metrics need neighbors, so they are computed here in one pass.
	chunks, err := o.stores.Chunks.GetChunksByDocument(ctx, run.docID)
	if err != nil {
		return nil, err
	}
	for i, chunk := range chunks {
		var prev string
		if i > 0 {
			prev = chunks[i-1].Contents
		}
		chunk.Metrics = chunkMetrics(chunk.Contents, prev)
	}
	if len(chunks) > 0 {
		if _, err := o.stores.Chunks.UpdateChunks(ctx, chunks...); err != nil {
			return nil, err
		}
	}

	images, err := o.stores.Images.GetImagesByDocument(ctx, run.docID)
	if err != nil {
		return nil, err
	}
	for _, image := range images {
		embedMetrics := image.Metrics
		image.Metrics = imageMetrics(image)
		for k, v := range embedMetrics {
			image.Metrics[k] = v
		}
	}
	if len(images) > 0 {
		if _, err := o.stores.Images.UpdateImages(ctx, images...); err != nil {
			return nil, err
		}
	}

	return map[string]float64{
		"attempts": float64(attempts),
		"products": float64(len(products)),
	}, nil
}

// stageLink builds the chunk relationship graph and links images to their
// most similar chunks. Image linking fans out on the batch pool.
func (o *Orchestrator) stageLink(ctx context.Context, run *jobRun) (map[string]float64, error) {
	chunks, err := o.stores.Chunks.GetChunksByDocument(ctx, run.docID)
	if err != nil {
		return nil, err
	}
	images, err := o.stores.Images.GetImagesByDocument(ctx, run.docID)
	if err != nil {
		return nil, err
	}

	chunkEdges, err := o.builder.BuildChunkEdges(ctx, chunks)
	if err != nil {
		return nil, err
	}

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		imageEdges int
		linkErr    error
	)
	for _, image := range images {
		img := image
		wg.Add(1)
		if err := o.batchPool.Submit(func() {
			defer wg.Done()
			edges, err := o.builder.LinkImage(ctx, img, chunks)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if linkErr == nil {
					linkErr = err
				}
				return
			}
			imageEdges += len(edges)

			// Best link similarity doubles as the image's relevance metric.
			best := 0.0
			for _, edge := range edges {
				if edge.Strength > best {
					best = edge.Strength
				}
			}
			if img.Metrics == nil {
				img.Metrics = map[string]float64{}
			}
			img.Metrics["relevance"] = best
		}); err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()
	if linkErr != nil {
		return nil, linkErr
	}
	if len(images) > 0 {
		if _, err := o.stores.Images.UpdateImages(ctx, images...); err != nil {
			return nil, err
		}
	}

	return map[string]float64{
		"chunk_edges": float64(len(chunkEdges)),
		"image_edges": float64(imageEdges),
	}, nil
}

// stageAssess scores every entity of the document against the quality
// thresholds and dispatches review tasks for the failures.
func (o *Orchestrator) stageAssess(ctx context.Context, run *jobRun) (map[string]float64, error) {
	assessed, passed, reviews := 0, 0, 0

	assessEntity := func(entityID core.ID, entityType core.EntityType, metrics map[string]float64) error {
		assessment, err := o.assessor.Assess(entityID, entityType, metrics)
		if err != nil {
			return err
		}
		stored, err := o.stores.Assessments.AddAssessment(ctx, assessment)
		if err != nil {
			return err
		}

		assessed++
		if stored.PassesThresholds {
			passed++
		}

		task, err := o.dispatcher.Dispatch(ctx, stored)
		if err != nil {
			return err
		}
		if task != nil {
			reviews++
		}
		return nil
	}

	products, err := o.stores.Products.GetProductsByDocument(ctx, run.docID)
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		if err := assessEntity(product.Id, core.EntityProduct, product.Metrics); err != nil {
			return nil, err
		}
	}

	chunks, err := o.stores.Chunks.GetChunksByDocument(ctx, run.docID)
	if err != nil {
		return nil, err
	}
	for _, chunk := range chunks {
		if err := assessEntity(chunk.Id, core.EntityChunk, chunk.Metrics); err != nil {
			return nil, err
		}
	}

	images, err := o.stores.Images.GetImagesByDocument(ctx, run.docID)
	if err != nil {
		return nil, err
	}
	for _, image := range images {
		if err := assessEntity(image.Id, core.EntityImage, image.Metrics); err != nil {
			return nil, err
		}
	}

	metrics := map[string]float64{
		"assessed":     float64(assessed),
		"review_tasks": float64(reviews),
	}
	if assessed > 0 {
		metrics["pass_rate"] = float64(passed) / float64(assessed)
	}
	return metrics, nil
}

// clamp01 bounds a score to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// chunkMetrics computes the heuristic quality metrics for a chunk.
// The scores are deliberately simple and deterministic; the assess stage
// interprets them against configured thresholds.
func chunkMetrics(contents, prev string) map[string]float64 {
	trimmed := strings.TrimSpace(contents)

	// Full quality credit at 200+ characters of content.
	quality := clamp01(float64(len(trimmed)) / 200)

	// A chunk that ends mid-sentence got a poor boundary.
	boundary := 0.6
	if trimmed == "" {
		boundary = 0
	} else if strings.ContainsRune(".!?:", rune(trimmed[len(trimmed)-1])) {
		boundary = 1
	}

	// Overlap with the preceding chunk indicates topical continuity.
	coherence := 0.7
	if prev != "" {
		coherence = clamp01(0.7 + 0.3*similarity.Jaccard(prev, contents))
	}

	completeness := 0.7
	if headingDepth(contents) > 0 {
		completeness = 0.9
	}
	if boundary == 1 {
		completeness = clamp01(completeness + 0.1)
	}

	return map[string]float64{
		"quality":               quality,
		"boundary_quality":      boundary,
		"coherence":             coherence,
		"semantic_completeness": completeness,
	}
}

// imageMetrics computes the heuristic quality metrics for an image.
// The relevance metric is refined later by the link stage.
func imageMetrics(image *core.Image) map[string]float64 {
	quality := 0.5
	if image.Width > 0 && image.Height > 0 {
		quality = 0.9
	}

	ocr := 0.3
	if image.OCRText != "" {
		ocr = 0.9
	} else if image.Caption != "" {
		ocr = 0.75
	}

	format := 0.0
	if validImageFormat(image.Format) {
		format = 0.7
		if image.Width > 0 && image.Height > 0 {
			format = 1
		}
	}

	return map[string]float64{
		"quality":         quality,
		"ocr_confidence":  ocr,
		"format_validity": format,
		"relevance":       0.5,
	}
}

// productMetrics computes the heuristic quality metrics for a product.
func productMetrics(name string, attributes map[string]string, confidence float64) map[string]float64 {
	completeness := clamp01(0.4 + 0.15*float64(len(attributes)))
	quality := clamp01((confidence + completeness) / 2)
	if strings.TrimSpace(name) == "" {
		quality = 0
	}

	return map[string]float64{
		"confidence":   clamp01(confidence),
		"completeness": completeness,
		"quality":      quality,
	}
}

// setEmbeddingMetrics records embedding coverage on an entity's metric map.
// The embedding API reports no per-vector confidence, so a successful
// non-empty vector counts as high confidence.
func setEmbeddingMetrics(metrics *map[string]float64, vector []float32) {
	if *metrics == nil {
		*metrics = map[string]float64{}
	}
	if len(vector) > 0 {
		(*metrics)["embedding_coverage"] = 1
		(*metrics)["embedding_confidence"] = 0.95
	} else {
		(*metrics)["embedding_coverage"] = 0
		(*metrics)["embedding_confidence"] = 0
	}
}

// validImageFormat reports whether the format is one the extractor emits.
func validImageFormat(format string) bool {
	return slices.Contains(ai.ImageFormats, strings.ToLower(format))
}

// productText is the text embedded for a product: its name plus attributes.
func productText(product *core.Product) string {
	var sb strings.Builder
	sb.WriteString(product.Name)
	for key, value := range product.Attributes {
		sb.WriteString("\n")
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(value)
	}
	return sb.String()
}
