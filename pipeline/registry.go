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
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

// Registry is the single source of truth for job and stage state. Writes
// to a given job are serialized through a per-job mutex (single-writer per
// job); reads go straight to the store and may run concurrently.
type Registry struct {
	jobs        storage.JobRepository
	checkpoints storage.CheckpointRepository
	logger      *slog.Logger

	mu       sync.Mutex
	jobLocks map[core.ID]*sync.Mutex
}

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used by the registry.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a registry over the given repositories.
func NewRegistry(jobs storage.JobRepository, checkpoints storage.CheckpointRepository, opts ...RegistryOption) (*Registry, error) {
	if jobs == nil {
		return nil, ErrJobRepositoryRequired
	}
	if checkpoints == nil {
		return nil, ErrCheckpointRepositoryRequired
	}

	registry := &Registry{
		jobs:        jobs,
		checkpoints: checkpoints,
		logger:      slog.Default().With("component", "job-registry"),
		jobLocks:    map[core.ID]*sync.Mutex{},
	}
	for _, opt := range opts {
		opt(registry)
	}
	return registry, nil
}

// lockJob acquires the per-job write lock and returns its unlock func.
func (r *Registry) lockJob(id core.ID) func() {
	r.mu.Lock()
	lock, ok := r.jobLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.jobLocks[id] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// forgetJobLock drops a terminal job's lock entry so the map does not grow
// without bound. Late writers get a fresh mutex, but every write they could
// attempt is rejected by transition validation anyway.
func (r *Registry) forgetJobLock(id core.ID) {
	r.mu.Lock()
	delete(r.jobLocks, id)
	r.mu.Unlock()
}

// CreateJob validates and persists a new job. The stage list is fixed at
// creation; every stage starts pending.
func (r *Registry) CreateJob(ctx context.Context, workspace string, document core.DocumentRef, stageNames []string, priority int, metadata map[string]string) (*core.Job, error) {
	stages := make([]core.Stage, len(stageNames))
	for i, name := range stageNames {
		stages[i] = core.Stage{Name: name, Status: core.StagePending}
	}

	job := &core.Job{
		Workspace: workspace,
		Document:  document,
		Status:    core.JobPending,
		Stages:    stages,
		Priority:  priority,
		Cursor:    -1,
		Metadata:  metadata,
	}
	if err := core.ValidateJob(job); err != nil {
		return nil, err
	}

	created, err := r.jobs.AddJob(ctx, job)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("created job", "job", created.Id, "workspace", workspace, "stages", len(stages))
	return created, nil
}

// GetJob returns the current state of a job.
func (r *Registry) GetJob(ctx context.Context, id core.ID) (*core.Job, error) {
	return r.jobs.GetJob(ctx, id)
}

// ListJobs returns jobs matching the filter, newest first.
func (r *Registry) ListJobs(ctx context.Context, filter storage.JobFilter) ([]*core.Job, error) {
	return r.jobs.ListJobs(ctx, filter)
}

// TransitionStage moves one stage of a job to a new status, updating the
// stage's timestamps, attempt count, metrics, and error, and recomputing
// the job status. Illegal transitions fail with core.ErrInvalidTransition.
// At most one stage per job may be processing at any time.
func (r *Registry) TransitionStage(ctx context.Context, jobID core.ID, stageName string, newStatus core.StageStatus, metrics map[string]float64, stageErr string) (*core.Job, error) {
	unlock := r.lockJob(jobID)
	defer unlock()

	job, err := r.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range job.Stages {
		if job.Stages[i].Name == stageName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: job %d has no stage %q", core.ErrNotFound, jobID, stageName)
	}

	stage := &job.Stages[idx]
	if err := core.ValidateTransition(stageName, stage.Status, newStatus); err != nil {
		return nil, err
	}
	if newStatus == core.StageProcessing {
		for i := range job.Stages {
			if i != idx && job.Stages[i].Status == core.StageProcessing {
				return nil, fmt.Errorf("%w: stage %q is already processing", core.ErrInvalidTransition, job.Stages[i].Name)
			}
		}
	}

	now := time.Now().UTC()
	stage.Status = newStatus
	switch newStatus {
	case core.StageProcessing:
		stage.StartedAt = now
		stage.Attempts++
	case core.StageCompleted, core.StageFailed, core.StageCancelled, core.StageSkipped:
		if stage.EndedAt.IsZero() {
			stage.EndedAt = now
		}
	}
	if metrics != nil {
		if stage.Metrics == nil {
			stage.Metrics = map[string]float64{}
		}
		for k, v := range metrics {
			stage.Metrics[k] = v
		}
	}
	stage.Error = stageErr

	job.Status = core.ComputeJobStatus(job.Stages)
	if job.Status.Terminal() && job.CompletedAt.IsZero() {
		job.CompletedAt = now
	}

	updated, err := r.jobs.UpdateJob(ctx, job)
	if err != nil {
		return nil, err
	}
	if updated.Status.Terminal() {
		r.forgetJobLock(jobID)
	}

	r.logger.Debug("stage transition",
		"job", jobID,
		"stage", stageName,
		"status", newStatus.String(),
		"jobStatus", updated.Status.String())
	return updated, nil
}

// Checkpoint persists the job's completion cursor (index of the last stage
// completed or skipped with no unfinished stage before it) plus references
// to intermediate artifacts, and mirrors the cursor onto the job record.
func (r *Registry) Checkpoint(ctx context.Context, jobID core.ID, artifacts map[string]string) error {
	unlock := r.lockJob(jobID)
	defer unlock()

	job, err := r.jobs.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	cursor := -1
	stageName := ""
	for i := range job.Stages {
		if job.Stages[i].Status != core.StageCompleted && job.Stages[i].Status != core.StageSkipped {
			break
		}
		cursor = i
		stageName = job.Stages[i].Name
	}

	checkpoint := &core.Checkpoint{
		JobId:     jobID,
		Cursor:    cursor,
		StageName: stageName,
		Artifacts: artifacts,
	}
	if err := r.checkpoints.SaveCheckpoint(ctx, checkpoint); err != nil {
		return err
	}

	if job.Cursor != cursor {
		job.Cursor = cursor
		if _, err := r.jobs.UpdateJob(ctx, job); err != nil {
			return err
		}
	}
	if job.Status.Terminal() {
		r.forgetJobLock(jobID)
	}
	return nil
}

// Resume reconstructs a job's continuation from its checkpoint: the names
// of the stages still to run, in order, skipping completed and skipped
// stages, plus the checkpointed artifacts. A checkpoint whose cursor or
// stage name does not match the job's stage list fails with
// core.ErrCheckpointCorrupt.
func (r *Registry) Resume(ctx context.Context, jobID core.ID) ([]string, map[string]string, error) {
	job, err := r.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}

	artifacts := map[string]string{}
	checkpoint, err := r.checkpoints.LoadCheckpoint(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if checkpoint != nil {
		if checkpoint.Cursor < -1 || checkpoint.Cursor >= len(job.Stages) {
			return nil, nil, fmt.Errorf("%w: cursor %d out of range for job %d", core.ErrCheckpointCorrupt, checkpoint.Cursor, jobID)
		}
		if checkpoint.Cursor >= 0 && job.Stages[checkpoint.Cursor].Name != checkpoint.StageName {
			return nil, nil, fmt.Errorf("%w: cursor names unknown stage %q", core.ErrCheckpointCorrupt, checkpoint.StageName)
		}
		if checkpoint.Artifacts != nil {
			artifacts = checkpoint.Artifacts
		}
	}

	var remaining []string
	for i := range job.Stages {
		switch job.Stages[i].Status {
		case core.StageCompleted, core.StageSkipped:
			continue
		default:
			remaining = append(remaining, job.Stages[i].Name)
		}
	}
	return remaining, artifacts, nil
}

// GetProgress computes the job's progress summary.
func (r *Registry) GetProgress(ctx context.Context, jobID core.ID) (*core.Progress, error) {
	job, err := r.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	progress := job.Progress()
	return &progress, nil
}
