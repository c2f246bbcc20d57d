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


package quality

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

// Review types, in dispatch precedence order.
const (
	ReviewEmbedding    = "embedding_review"
	ReviewCompleteness = "completeness_review"
	ReviewValidation   = "validation_review"
	ReviewQuality      = "quality_review"
)

// Dispatcher turns failing assessments into prioritized human-review tasks.
type Dispatcher struct {
	reviews storage.ReviewTaskRepository
	logger  *slog.Logger
}

// DispatcherOption is a functional option for configuring a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithDispatcherLogger sets the logger used by the dispatcher.
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a dispatcher writing tasks to the given repository.
func NewDispatcher(reviews storage.ReviewTaskRepository, opts ...DispatcherOption) (*Dispatcher, error) {
	if reviews == nil {
		return nil, ErrReviewRepositoryRequired
	}

	dispatcher := &Dispatcher{
		reviews: reviews,
		logger:  slog.Default().With("component", "review-dispatcher"),
	}
	for _, opt := range opts {
		opt(dispatcher)
	}
	return dispatcher, nil
}

// Dispatch creates a review task for an assessment that needs human review.
// Returns nil, nil when the assessment passed. At most one task is ever
// created per assessment: dispatching twice returns the existing task.
// The assessment must already be persisted (have an ID).
func (d *Dispatcher) Dispatch(ctx context.Context, assessment *core.QualityAssessment) (*core.ReviewTask, error) {
	if !assessment.NeedsHumanReview {
		return nil, nil
	}

	task := &core.ReviewTask{
		EntityId:     assessment.EntityId,
		EntityType:   assessment.EntityType,
		AssessmentId: assessment.Id,
		ReviewType:   reviewTypeFor(assessment.Issues),
		Priority:     priorityFor(assessment.Issues),
		Status:       core.ReviewPending,
		Assessment:   *assessment,
	}

	created, err := d.reviews.AddTask(ctx, task)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return d.reviews.GetTaskByAssessment(ctx, assessment.Id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create review task: %w", err)
	}

	d.logger.Info("dispatched review task",
		"task", created.Id,
		"entity", created.EntityId,
		"type", created.ReviewType,
		"priority", created.Priority.String())
	return created, nil
}

// Complete records a reviewer decision on a pending task.
// An escalate decision sets the task to escalated; all other decisions set
// it to completed. Completing a non-pending task fails with
// core.ErrInvalidTransition.
func (d *Dispatcher) Complete(ctx context.Context, taskID core.ID, decision core.ReviewDecision, reviewer, notes string) (*core.ReviewTask, error) {
	task, err := d.reviews.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status != core.ReviewPending {
		return nil, fmt.Errorf("%w: review task %d is %s", core.ErrInvalidTransition, taskID, task.Status.String())
	}

	task.Decision = decision
	task.Reviewer = reviewer
	task.Notes = notes
	task.CompletedAt = time.Now().UTC()
	if decision == core.DecisionEscalate {
		task.Status = core.ReviewEscalated
	} else {
		task.Status = core.ReviewCompleted
	}

	updated, err := d.reviews.UpdateTask(ctx, task)
	if err != nil {
		return nil, err
	}

	d.logger.Info("completed review task",
		"task", taskID,
		"decision", decision.String(),
		"reviewer", reviewer)
	return updated, nil
}

// List returns review tasks matching the filter.
func (d *Dispatcher) List(ctx context.Context, filter storage.ReviewTaskFilter) ([]*core.ReviewTask, error) {
	return d.reviews.ListTasks(ctx, filter)
}

// priorityFor derives task priority from the assessment's issues:
// any critical issue is urgent, more than two high issues is high,
// any high issue is medium, otherwise low.
func priorityFor(issues []core.Issue) core.ReviewPriority {
	high := 0
	for _, issue := range issues {
		switch issue.Severity {
		case core.SeverityCritical:
			return core.PriorityUrgent
		case core.SeverityHigh:
			high++
		}
	}

	switch {
	case high > 2:
		return core.PriorityHigh
	case high > 0:
		return core.PriorityMedium
	default:
		return core.PriorityLow
	}
}

// reviewTypeFor picks the review type by first match in fixed precedence:
// embedding, then completeness, then validation, then generic quality.
func reviewTypeFor(issues []core.Issue) string {
	types := map[string]bool{}
	for _, issue := range issues {
		types[issue.Type] = true
	}

	switch {
	case types[IssueEmbedding]:
		return ReviewEmbedding
	case types[IssueCompleteness]:
		return ReviewCompleteness
	case types[IssueValidation]:
		return ReviewValidation
	default:
		return ReviewQuality
	}
}
