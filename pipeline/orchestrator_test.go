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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/poiesic/docflow/ai"
	"github.com/poiesic/docflow/ai/mock"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/quality"
	"github.com/poiesic/docflow/relationship"
	badgerstore "github.com/poiesic/docflow/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSource serves documents from memory, keyed by URI.
type mapSource struct {
	docs map[string]string
}

func (s *mapSource) Fetch(_ context.Context, ref core.DocumentRef) (string, string, error) {
	contents, ok := s.docs[ref.URI]
	if !ok {
		return "", "", fmt.Errorf("%w: document %q", core.ErrNotFound, ref.URI)
	}
	return contents, "markdown", nil
}

func fastTestConfig() *Config {
	config := DefaultConfig()
	config.MaxConcurrentJobs = 2
	config.BatchPoolSize = 1
	config.BatchSize = 8
	config.RetryAttempts = 2
	config.RetryBaseDelay = time.Millisecond
	config.RetryMaxDelay = 5 * time.Millisecond
	config.ChunkSize = 200
	config.ChunkOverlap = 20
	return config
}

func newTestOrchestrator(t *testing.T, provider ai.Provider, source DocumentSource, config *Config) (*Orchestrator, *Registry, *badgerstore.Repositories) {
	t.Helper()

	repos, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	registry, err := NewRegistry(repos.Jobs, repos.Checkpoints)
	require.NoError(t, err)

	stores := &Stores{
		Jobs:        repos.Jobs,
		Checkpoints: repos.Checkpoints,
		Chunks:      repos.Chunks,
		Images:      repos.Images,
		Products:    repos.Products,
		Assessments: repos.Assessments,
		Reviews:     repos.Reviews,
		Edges:       repos.Edges,
	}

	assessor, err := quality.NewAssessor(nil)
	require.NoError(t, err)
	dispatcher, err := quality.NewDispatcher(repos.Reviews)
	require.NoError(t, err)
	builder, err := relationship.NewBuilder(repos.Edges, nil)
	require.NoError(t, err)

	orchestrator, err := NewOrchestrator(registry, stores, provider, source, assessor, dispatcher, builder, config)
	require.NoError(t, err)
	t.Cleanup(orchestrator.Release)

	return orchestrator, registry, repos
}

func waitForJob(t *testing.T, registry *Registry, jobID core.ID) *core.Job {
	t.Helper()

	var job *core.Job
	require.Eventually(t, func() bool {
		var err error
		job, err = registry.GetJob(context.Background(), jobID)
		if err != nil {
			return false
		}
		switch job.Status {
		case core.JobCompleted, core.JobFailed, core.JobCancelled:
			return true
		}
		return false
	}, 15*time.Second, 10*time.Millisecond)
	return job
}

const testManual = `# Widget Pro Manual

## Overview

The Widget Pro is a compact industrial controller designed for continuous
operation in harsh environments. This manual covers installation, wiring,
and routine maintenance of the controller and its accessories.

![Front panel diagram](figures/front-panel.png)

## Specifications

Product: Widget Pro
Product: Widget Mini

The controller operates between -20C and 60C ambient temperature. Mount
the unit vertically and leave at least 50mm of clearance on every side
for airflow. Use shielded cable for all signal wiring runs longer than
three meters.

## Maintenance

Inspect terminal torque annually. Replace the backup battery every five
years. Clean the housing with a dry cloth only.
`

func TestJobRunsAllStages(t *testing.T) {
	source := &mapSource{docs: map[string]string{"manuals/widget.md": testManual}}
	orchestrator, registry, repos := newTestOrchestrator(t, mock.NewMockProvider(), source, fastTestConfig())
	ctx := context.Background()

	job, err := orchestrator.Submit(ctx, SubmitRequest{
		Workspace: "acme",
		Document:  testDocument(),
	})
	require.NoError(t, err)
	assert.Equal(t, core.JobPending, job.Status)
	require.Len(t, job.Stages, len(DefaultStages()))

	finished := waitForJob(t, registry, job.Id)
	require.Equal(t, core.JobCompleted, finished.Status)
	for _, stage := range finished.Stages {
		assert.Equal(t, core.StageCompleted, stage.Status, "stage %s", stage.Name)
		assert.Equal(t, 1, stage.Attempts, "stage %s", stage.Name)
	}

	docID := finished.Document.DocumentId()
	chunks, err := repos.Chunks.GetChunksByDocument(ctx, docID)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.NotEmpty(t, chunk.Vector)
		assert.NotEmpty(t, chunk.Metrics)
	}

	images, err := repos.Images.GetImagesByDocument(ctx, docID)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.NotEmpty(t, images[0].Vector)

	products, err := repos.Products.GetProductsByDocument(ctx, docID)
	require.NoError(t, err)
	require.NotEmpty(t, products)
	names := make([]string, len(products))
	for i, product := range products {
		names[i] = product.Name
		assert.NotEmpty(t, product.Vector)
	}
	assert.Contains(t, names, "Widget Pro")

	if len(chunks) > 1 {
		edges, err := repos.Edges.GetEdgesBySource(ctx, chunks[0].Id)
		require.NoError(t, err)
		assert.NotEmpty(t, edges)
	}

	byName := map[string]core.Stage{}
	for _, stage := range finished.Stages {
		byName[stage.Name] = stage
	}
	assert.Greater(t, byName[StageChunk].Metrics["chunks"], 0.0)
	assert.Greater(t, byName[StageAssess].Metrics["assessed"], 0.0)

	// Terminal jobs cannot be cancelled.
	_, err = orchestrator.Cancel(ctx, job.Id)
	assert.ErrorIs(t, err, core.ErrInvalidTransition)
}

func TestSubmitUnknownStage(t *testing.T) {
	source := &mapSource{docs: map[string]string{}}
	orchestrator, _, _ := newTestOrchestrator(t, mock.NewMockProvider(), source, fastTestConfig())

	_, err := orchestrator.Submit(context.Background(), SubmitRequest{
		Workspace: "acme",
		Document:  testDocument(),
		Stages:    []string{StageExtract, "polish"},
	})
	assert.ErrorIs(t, err, ErrUnknownStage)
}

// A collaborator failing twice before succeeding must leave the job
// completed, with the stage recording every attempt.
func TestStageRetriesThenSucceeds(t *testing.T) {
	provider := mock.NewMockProvider().(*mock.MockProvider)
	failures := 0
	provider.GetMockEmbedder().EmbedImageFunc = func(_ context.Context, caption, ocrText string) ([]float32, error) {
		if failures < 2 {
			failures++
			return nil, errors.New("model overloaded")
		}
		return []float32{0.6, 0.8}, nil
	}

	source := &mapSource{docs: map[string]string{
		"manuals/widget.md": "Short overview text.\n\n![Pump diagram](figures/pump.png)\n",
	}}
	orchestrator, registry, _ := newTestOrchestrator(t, provider, source, fastTestConfig())

	job, err := orchestrator.Submit(context.Background(), SubmitRequest{
		Workspace: "acme",
		Document:  testDocument(),
		Stages:    []string{StageExtract, StageEmbed, StageAssess},
	})
	require.NoError(t, err)

	finished := waitForJob(t, registry, job.Id)
	require.Equal(t, core.JobCompleted, finished.Status)

	embed := finished.Stages[1]
	require.Equal(t, StageEmbed, embed.Name)
	assert.Equal(t, core.StageCompleted, embed.Status)
	assert.Equal(t, 3.0, embed.Metrics["attempts"])
	assert.Equal(t, 1, embed.Attempts)
}

func TestStageFailureFailsJob(t *testing.T) {
	provider := mock.NewMockProvider().(*mock.MockProvider)
	provider.GetMockEmbedder().EmbedImageFunc = func(_ context.Context, _, _ string) ([]float32, error) {
		return nil, errors.New("model unavailable")
	}

	source := &mapSource{docs: map[string]string{
		"manuals/widget.md": "Short overview text.\n\n![Pump diagram](figures/pump.png)\n",
	}}
	orchestrator, registry, _ := newTestOrchestrator(t, provider, source, fastTestConfig())

	job, err := orchestrator.Submit(context.Background(), SubmitRequest{
		Workspace: "acme",
		Document:  testDocument(),
		Stages:    []string{StageExtract, StageEmbed},
	})
	require.NoError(t, err)

	finished := waitForJob(t, registry, job.Id)
	require.Equal(t, core.JobFailed, finished.Status)

	embed := finished.Stages[1]
	assert.Equal(t, core.StageFailed, embed.Status)
	assert.Contains(t, embed.Error, "model unavailable")
}

func TestCancelJob(t *testing.T) {
	provider := mock.NewMockProvider().(*mock.MockProvider)
	provider.GetMockDocumentExtractor().ExtractDocumentFunc = func(ctx context.Context, contents, format string) (*ai.ExtractionResult, error) {
		select {
		case <-time.After(200 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return &ai.ExtractionResult{Text: contents}, nil
	}

	source := &mapSource{docs: map[string]string{"manuals/widget.md": testManual}}
	orchestrator, registry, _ := newTestOrchestrator(t, provider, source, fastTestConfig())
	ctx := context.Background()

	job, err := orchestrator.Submit(ctx, SubmitRequest{
		Workspace: "acme",
		Document:  testDocument(),
	})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = orchestrator.Cancel(ctx, job.Id)
	require.NoError(t, err)

	finished := waitForJob(t, registry, job.Id)
	assert.Equal(t, core.JobCancelled, finished.Status)

	// No stage past the cancelled one may have started.
	cancelled := -1
	for i, stage := range finished.Stages {
		if stage.Status == core.StageCancelled {
			cancelled = i
			break
		}
	}
	require.GreaterOrEqual(t, cancelled, 0)
	for _, stage := range finished.Stages[cancelled+1:] {
		assert.Equal(t, core.StagePending, stage.Status)
	}
}

// A stage in flight when the orchestrator shuts down must stay processing,
// not fail, so a restarted orchestrator can pick the job back up.
func TestShutdownLeavesJobResumable(t *testing.T) {
	provider := mock.NewMockProvider().(*mock.MockProvider)
	started := make(chan struct{}, 1)
	provider.GetMockDocumentExtractor().ExtractDocumentFunc = func(ctx context.Context, contents, format string) (*ai.ExtractionResult, error) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}

	source := &mapSource{docs: map[string]string{"manuals/widget.md": testManual}}
	orchestrator, registry, repos := newTestOrchestrator(t, provider, source, fastTestConfig())
	ctx := context.Background()

	job, err := orchestrator.Submit(ctx, SubmitRequest{
		Workspace: "acme",
		Document:  testDocument(),
	})
	require.NoError(t, err)

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("extract stage never started")
	}
	orchestrator.Release()

	// Give the interrupted worker time to run its failure path, then check
	// the stage was left in flight rather than recorded failed.
	time.Sleep(100 * time.Millisecond)
	interrupted, err := registry.GetJob(ctx, job.Id)
	require.NoError(t, err)
	assert.Equal(t, core.JobProcessing, interrupted.Status)
	require.Equal(t, StageExtract, interrupted.Stages[0].Name)
	assert.Equal(t, core.StageProcessing, interrupted.Stages[0].Status)
	assert.Empty(t, interrupted.Stages[0].Error)

	// A fresh orchestrator over the same stores resumes and finishes the job.
	provider.GetMockDocumentExtractor().ExtractDocumentFunc = nil
	stores := &Stores{
		Jobs:        repos.Jobs,
		Checkpoints: repos.Checkpoints,
		Chunks:      repos.Chunks,
		Images:      repos.Images,
		Products:    repos.Products,
		Assessments: repos.Assessments,
		Reviews:     repos.Reviews,
		Edges:       repos.Edges,
	}
	assessor, err := quality.NewAssessor(nil)
	require.NoError(t, err)
	dispatcher, err := quality.NewDispatcher(repos.Reviews)
	require.NoError(t, err)
	builder, err := relationship.NewBuilder(repos.Edges, nil)
	require.NoError(t, err)
	restarted, err := NewOrchestrator(registry, stores, provider, source, assessor, dispatcher, builder, fastTestConfig())
	require.NoError(t, err)
	t.Cleanup(restarted.Release)

	resumed, err := restarted.ResumeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resumed)

	finished := waitForJob(t, registry, job.Id)
	assert.Equal(t, core.JobCompleted, finished.Status)
	for _, stage := range finished.Stages {
		assert.Equal(t, core.StageCompleted, stage.Status, "stage %s", stage.Name)
	}
}

func TestResumeAll(t *testing.T) {
	source := &mapSource{docs: map[string]string{"manuals/widget.md": testManual}}
	orchestrator, registry, _ := newTestOrchestrator(t, mock.NewMockProvider(), source, fastTestConfig())
	ctx := context.Background()

	// A job created but never scheduled stands in for work interrupted by
	// a previous shutdown.
	job, err := registry.CreateJob(ctx, "acme", testDocument(), DefaultStages(), 0, nil)
	require.NoError(t, err)

	resumed, err := orchestrator.ResumeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resumed)

	finished := waitForJob(t, registry, job.Id)
	assert.Equal(t, core.JobCompleted, finished.Status)
}
