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
	"log/slog"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docflow/ai"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/quality"
	"github.com/poiesic/docflow/relationship"
	"github.com/poiesic/docflow/storage"
)

// Orchestrator drives jobs through their stage sequences. Jobs run on a
// bounded worker pool; within a stage, batch work fans out on a second pool
// and fully joins before the stage completes. All state lives in the
// registry, so a restarted orchestrator resumes from checkpoints.
type Orchestrator struct {
	registry   *Registry
	stores     *Stores
	provider   ai.Provider
	source     DocumentSource
	assessor   *quality.Assessor
	dispatcher *quality.Dispatcher
	builder    *relationship.Builder
	config     *Config
	monitor    JobMonitor
	logger     *slog.Logger

	jobPool   *ants.Pool
	batchPool *ants.Pool

	ctx    context.Context
	cancel context.CancelFunc
}

// OrchestratorOption is a functional option for configuring an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithMonitor sets the monitor notified of job lifecycle events.
func WithMonitor(monitor JobMonitor) OrchestratorOption {
	return func(o *Orchestrator) {
		if monitor != nil {
			o.monitor = monitor
		}
	}
}

// WithOrchestratorLogger sets the logger used by the orchestrator.
func WithOrchestratorLogger(logger *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator creates an orchestrator. A nil config uses DefaultConfig.
func NewOrchestrator(registry *Registry, stores *Stores, provider ai.Provider, source DocumentSource, assessor *quality.Assessor, dispatcher *quality.Dispatcher, builder *relationship.Builder, config *Config, opts ...OrchestratorOption) (*Orchestrator, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	if !stores.complete() {
		return nil, ErrStoresRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if source == nil {
		return nil, ErrSourceRequired
	}
	if assessor == nil {
		return nil, ErrAssessorRequired
	}
	if dispatcher == nil {
		return nil, ErrDispatcherRequired
	}
	if builder == nil {
		return nil, ErrBuilderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	jobPool, err := ants.NewPool(config.MaxConcurrentJobs)
	if err != nil {
		return nil, err
	}
	batchPool, err := ants.NewPool(config.BatchPoolSize)
	if err != nil {
		jobPool.Release()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	orchestrator := &Orchestrator{
		registry:   registry,
		stores:     stores,
		provider:   provider,
		source:     source,
		assessor:   assessor,
		dispatcher: dispatcher,
		builder:    builder,
		config:     config,
		monitor:    &noopMonitor{},
		logger:     slog.Default().With("component", "orchestrator"),
		jobPool:    jobPool,
		batchPool:  batchPool,
		ctx:        ctx,
		cancel:     cancel,
	}
	for _, opt := range opts {
		opt(orchestrator)
	}
	return orchestrator, nil
}

// Release stops accepting work and releases the worker pools. In-flight
// stages observe the cancelled context and fail; their jobs resume from
// checkpoints on the next start.
func (o *Orchestrator) Release() {
	o.cancel()
	o.jobPool.Release()
	o.batchPool.Release()
}

// SubmitRequest describes a job to enqueue.
type SubmitRequest struct {
	Workspace string
	Document  core.DocumentRef
	Stages    []string // Empty means DefaultStages
	Priority  int
	Metadata  map[string]string
}

// Submit validates, persists, and enqueues a job, returning immediately
// with the pending job. When the pool is saturated the job waits in
// pending; submissions are never rejected for capacity.
func (o *Orchestrator) Submit(ctx context.Context, req SubmitRequest) (*core.Job, error) {
	stages := req.Stages
	if len(stages) == 0 {
		stages = DefaultStages()
	}
	for _, stage := range stages {
		if _, ok := o.handlerFor(stage); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStage, stage)
		}
	}

	job, err := o.registry.CreateJob(ctx, req.Workspace, req.Document, stages, req.Priority, req.Metadata)
	if err != nil {
		return nil, err
	}
	o.monitor.JobAccepted(job)
	o.schedule(job.Id)
	return job, nil
}

// schedule hands a job to the pool without blocking the caller: Submit on a
// full ants pool blocks until a worker frees, so the handoff runs on its
// own goroutine.
func (o *Orchestrator) schedule(jobID core.ID) {
	go func() {
		if err := o.jobPool.Submit(func() { o.runJob(jobID) }); err != nil {
			o.logger.Error("failed to schedule job", "job", jobID, "err", err)
		}
	}()
}

// ResumeAll re-enqueues every job left pending or processing, typically
// after a restart. Stages already completed are skipped via checkpoints.
func (o *Orchestrator) ResumeAll(ctx context.Context) (int, error) {
	resumed := 0
	for _, status := range []core.JobStatus{core.JobPending, core.JobProcessing} {
		jobs, err := o.registry.ListJobs(ctx, storage.JobFilter{Status: status})
		if err != nil {
			return resumed, err
		}
		for _, job := range jobs {
			o.schedule(job.Id)
			resumed++
		}
	}
	if resumed > 0 {
		o.logger.Info("resuming interrupted jobs", "count", resumed)
	}
	return resumed, nil
}

// Cancel marks a job cancelled. The currently processing stage (or the
// first pending one) transitions to cancelled; an in-flight handler's
// results are discarded when it tries to complete. Terminal jobs cannot be
// cancelled.
func (o *Orchestrator) Cancel(ctx context.Context, jobID core.ID) (*core.Job, error) {
	job, err := o.registry.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == core.JobCompleted || job.Status == core.JobFailed || job.Status == core.JobCancelled {
		return nil, fmt.Errorf("%w: job %d is already %s", core.ErrInvalidTransition, jobID, job.Status)
	}

	target := ""
	for i := range job.Stages {
		if job.Stages[i].Status == core.StageProcessing {
			target = job.Stages[i].Name
			break
		}
	}
	if target == "" {
		for i := range job.Stages {
			if job.Stages[i].Status == core.StagePending {
				target = job.Stages[i].Name
				break
			}
		}
	}
	if target == "" {
		return nil, fmt.Errorf("%w: job %d has no cancellable stage", core.ErrInvalidTransition, jobID)
	}

	updated, err := o.registry.TransitionStage(ctx, jobID, target, core.StageCancelled, nil, "")
	if err != nil {
		return nil, err
	}
	o.logger.Info("cancelled job", "job", jobID, "stage", target)
	return updated, nil
}

// runJob executes a job's remaining stages in order, checkpointing after
// every transition. The loop reloads the job before each stage so an
// external cancellation halts it at the next stage boundary.
func (o *Orchestrator) runJob(jobID core.ID) {
	ctx := o.ctx

	remaining, artifacts, err := o.registry.Resume(ctx, jobID)
	if err != nil {
		o.logger.Error("failed to resume job", "job", jobID, "err", err)
		return
	}
	run := &jobRun{artifacts: artifacts}

	for _, stageName := range remaining {
		job, err := o.registry.GetJob(ctx, jobID)
		if err != nil {
			o.logger.Error("failed to load job", "job", jobID, "err", err)
			return
		}
		if job.Status == core.JobCancelled || job.Status == core.JobFailed {
			break
		}
		run.job = job
		run.docID = job.Document.DocumentId()

		status := core.StagePending
		for i := range job.Stages {
			if job.Stages[i].Name == stageName {
				status = job.Stages[i].Status
				break
			}
		}
		if status.Terminal() {
			if status == core.StageFailed || status == core.StageCancelled {
				break
			}
			continue
		}

		// A stage found processing belonged to a crashed run; re-executing
		// it is safe because handlers replace their outputs wholesale.
		if status == core.StagePending {
			if _, err := o.registry.TransitionStage(ctx, jobID, stageName, core.StageProcessing, nil, ""); err != nil {
				if errors.Is(err, core.ErrInvalidTransition) {
					break
				}
				o.logger.Error("failed to start stage", "job", jobID, "stage", stageName, "err", err)
				return
			}
		}
		o.monitor.StageStarted(jobID, stageName)

		handler, _ := o.handlerFor(stageName)
		metrics, stageErr := handler(ctx, run)

		if stageErr != nil {
			// On orchestrator shutdown the stage stays processing so the
			// next ResumeAll re-executes it; only real failures are recorded.
			if o.ctx.Err() != nil {
				o.logger.Info("stage interrupted by shutdown", "job", jobID, "stage", stageName)
				return
			}
			// Collaborator errors are preserved verbatim on the stage.
			if _, err := o.registry.TransitionStage(ctx, jobID, stageName, core.StageFailed, metrics, stageErr.Error()); err != nil {
				o.logger.Error("failed to record stage failure", "job", jobID, "stage", stageName, "err", err)
			}
			if err := o.registry.Checkpoint(ctx, jobID, run.artifacts); err != nil {
				o.logger.Error("failed to checkpoint", "job", jobID, "err", err)
			}
			o.monitor.StageFinished(jobID, stageName, core.StageFailed)
			o.logger.Warn("stage failed", "job", jobID, "stage", stageName, "err", stageErr)
			break
		}

		if _, err := o.registry.TransitionStage(ctx, jobID, stageName, core.StageCompleted, metrics, ""); err != nil {
			// The stage was cancelled while the handler ran; its results
			// stay unrecorded.
			if errors.Is(err, core.ErrInvalidTransition) {
				o.logger.Info("discarding results of cancelled stage", "job", jobID, "stage", stageName)
				break
			}
			o.logger.Error("failed to complete stage", "job", jobID, "stage", stageName, "err", err)
			return
		}
		if err := o.registry.Checkpoint(ctx, jobID, run.artifacts); err != nil {
			o.logger.Error("failed to checkpoint", "job", jobID, "err", err)
		}
		o.monitor.StageFinished(jobID, stageName, core.StageCompleted)
	}

	job, err := o.registry.GetJob(ctx, jobID)
	if err != nil {
		o.logger.Error("failed to load finished job", "job", jobID, "err", err)
		return
	}
	o.monitor.JobFinished(job)
}

// retryCall runs a collaborator call with per-attempt timeout and
// exponential backoff, returning the attempt count for stage metrics.
func (o *Orchestrator) retryCall(ctx context.Context, call func(ctx context.Context) error) (int, error) {
	return RetryWithBackoff(ctx, func() error {
		callCtx, cancelCall := context.WithTimeout(ctx, o.config.CallTimeout)
		defer cancelCall()
		return call(callCtx)
	}, o.config.RetryAttempts+1, o.config.RetryBaseDelay, o.config.RetryMaxDelay)
}
