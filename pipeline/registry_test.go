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
	"testing"

	"github.com/poiesic/docflow/core"
	badgerstore "github.com/poiesic/docflow/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*Registry, *badgerstore.Repositories) {
	t.Helper()

	repos, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	registry, err := NewRegistry(repos.Jobs, repos.Checkpoints)
	require.NoError(t, err)
	return registry, repos
}

func testDocument() core.DocumentRef {
	return core.DocumentRef{
		Workspace:   "acme",
		URI:         "manuals/widget.md",
		ContentType: "text/markdown",
	}
}

func TestCreateJob(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	job, err := registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract, StageChunk}, 5, map[string]string{"origin": "upload"})
	require.NoError(t, err)

	assert.NotZero(t, job.Id)
	assert.Equal(t, core.JobPending, job.Status)
	assert.Equal(t, -1, job.Cursor)
	assert.Equal(t, 5, job.Priority)
	assert.False(t, job.CreatedAt.IsZero())
	require.Len(t, job.Stages, 2)
	for _, stage := range job.Stages {
		assert.Equal(t, core.StagePending, stage.Status)
		assert.Zero(t, stage.Attempts)
	}
}

func TestCreateJobValidation(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := registry.CreateJob(ctx, "acme", core.DocumentRef{URI: "doc.md"}, []string{StageExtract}, 0, nil)
	assert.ErrorIs(t, err, core.ErrValidation)

	_, err = registry.CreateJob(ctx, "acme", testDocument(), nil, 0, nil)
	assert.ErrorIs(t, err, core.ErrValidation)

	_, err = registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract, StageExtract}, 0, nil)
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestTransitionStage(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	job, err := registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract, StageChunk}, 0, nil)
	require.NoError(t, err)

	updated, err := registry.TransitionStage(ctx, job.Id, StageExtract, core.StageProcessing, nil, "")
	require.NoError(t, err)
	assert.Equal(t, core.JobProcessing, updated.Status)
	assert.Equal(t, core.StageProcessing, updated.Stages[0].Status)
	assert.Equal(t, 1, updated.Stages[0].Attempts)
	assert.False(t, updated.Stages[0].StartedAt.IsZero())

	updated, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageCompleted, map[string]float64{"pages": 3}, "")
	require.NoError(t, err)
	assert.Equal(t, core.StageCompleted, updated.Stages[0].Status)
	assert.False(t, updated.Stages[0].EndedAt.IsZero())
	assert.Equal(t, 3.0, updated.Stages[0].Metrics["pages"])
	assert.Equal(t, core.JobProcessing, updated.Status)

	// Finishing the last stage completes the job.
	_, err = registry.TransitionStage(ctx, job.Id, StageChunk, core.StageProcessing, nil, "")
	require.NoError(t, err)
	updated, err = registry.TransitionStage(ctx, job.Id, StageChunk, core.StageCompleted, nil, "")
	require.NoError(t, err)
	assert.Equal(t, core.JobCompleted, updated.Status)
	assert.False(t, updated.CompletedAt.IsZero())
}

func TestTransitionStageIllegal(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	job, err := registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract, StageChunk}, 0, nil)
	require.NoError(t, err)

	// Pending stages cannot complete without processing first.
	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageCompleted, nil, "")
	assert.ErrorIs(t, err, core.ErrInvalidTransition)

	// Unknown stage names are not found.
	_, err = registry.TransitionStage(ctx, job.Id, "polish", core.StageProcessing, nil, "")
	assert.ErrorIs(t, err, core.ErrNotFound)

	// Terminal stages permit no further movement.
	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageProcessing, nil, "")
	require.NoError(t, err)
	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageFailed, nil, "boom")
	require.NoError(t, err)
	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageProcessing, nil, "")
	assert.ErrorIs(t, err, core.ErrInvalidTransition)
}

func TestSingleProcessingStageInvariant(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	job, err := registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract, StageChunk}, 0, nil)
	require.NoError(t, err)

	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageProcessing, nil, "")
	require.NoError(t, err)

	_, err = registry.TransitionStage(ctx, job.Id, StageChunk, core.StageProcessing, nil, "")
	assert.ErrorIs(t, err, core.ErrInvalidTransition)
}

func TestStageFailureRecordsError(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	job, err := registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract}, 0, nil)
	require.NoError(t, err)

	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageProcessing, nil, "")
	require.NoError(t, err)
	updated, err := registry.TransitionStage(ctx, job.Id, StageExtract, core.StageFailed, nil, "collaborator call failed: timeout")
	require.NoError(t, err)

	assert.Equal(t, core.JobFailed, updated.Status)
	assert.Equal(t, "collaborator call failed: timeout", updated.Stages[0].Error)
}

func TestTerminalJobDropsLock(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	job, err := registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract}, 0, nil)
	require.NoError(t, err)

	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageProcessing, nil, "")
	require.NoError(t, err)
	registry.mu.Lock()
	held := len(registry.jobLocks)
	registry.mu.Unlock()
	assert.Equal(t, 1, held)

	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageCompleted, nil, "")
	require.NoError(t, err)
	require.NoError(t, registry.Checkpoint(ctx, job.Id, nil))

	registry.mu.Lock()
	held = len(registry.jobLocks)
	registry.mu.Unlock()
	assert.Zero(t, held)
}

func TestCheckpointAndResume(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	job, err := registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract, StageChunk, StageEmbed}, 0, nil)
	require.NoError(t, err)

	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageProcessing, nil, "")
	require.NoError(t, err)
	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageCompleted, nil, "")
	require.NoError(t, err)

	artifacts := map[string]string{"text": "extracted body"}
	require.NoError(t, registry.Checkpoint(ctx, job.Id, artifacts))

	reloaded, err := registry.GetJob(ctx, job.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Cursor)

	remaining, restored, err := registry.Resume(ctx, job.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{StageChunk, StageEmbed}, remaining)
	assert.Equal(t, "extracted body", restored["text"])
}

func TestResumeWithoutCheckpoint(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	job, err := registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract, StageChunk}, 0, nil)
	require.NoError(t, err)

	remaining, artifacts, err := registry.Resume(ctx, job.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{StageExtract, StageChunk}, remaining)
	assert.Empty(t, artifacts)
}

func TestResumeCorruptCheckpoint(t *testing.T) {
	registry, repos := newTestRegistry(t)
	ctx := context.Background()

	job, err := registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract, StageChunk}, 0, nil)
	require.NoError(t, err)

	require.NoError(t, repos.Checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
		JobId:     job.Id,
		Cursor:    7,
		StageName: StageExtract,
	}))
	_, _, err = registry.Resume(ctx, job.Id)
	assert.ErrorIs(t, err, core.ErrCheckpointCorrupt)

	require.NoError(t, repos.Checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
		JobId:     job.Id,
		Cursor:    0,
		StageName: "polish",
	}))
	_, _, err = registry.Resume(ctx, job.Id)
	assert.ErrorIs(t, err, core.ErrCheckpointCorrupt)
}

func TestGetProgress(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	job, err := registry.CreateJob(ctx, "acme", testDocument(), []string{StageExtract, StageChunk, StageEmbed, StageAssess}, 0, nil)
	require.NoError(t, err)

	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageProcessing, nil, "")
	require.NoError(t, err)
	_, err = registry.TransitionStage(ctx, job.Id, StageExtract, core.StageCompleted, nil, "")
	require.NoError(t, err)
	_, err = registry.TransitionStage(ctx, job.Id, StageChunk, core.StageProcessing, nil, "")
	require.NoError(t, err)

	progress, err := registry.GetProgress(ctx, job.Id)
	require.NoError(t, err)
	assert.Equal(t, StageChunk, progress.CurrentStage)
	assert.Equal(t, 1, progress.CompletedStages)
	assert.Equal(t, 4, progress.TotalStages)
	assert.InDelta(t, 25.0, progress.Percentage, 0.001)
}
