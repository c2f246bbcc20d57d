package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

func testTask(assessmentID core.ID, priority core.ReviewPriority) *core.ReviewTask {
	return &core.ReviewTask{
		EntityId:     100,
		EntityType:   core.EntityChunk,
		AssessmentId: assessmentID,
		ReviewType:   "quality_review",
		Priority:     priority,
		Status:       core.ReviewPending,
	}
}

func TestReviewTaskBasics(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	added, err := repos.Reviews.AddTask(ctx, testTask(1, core.PriorityHigh))
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}
	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be set")
	}

	retrieved, err := repos.Reviews.GetTask(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get task: %v", err)
	}
	if retrieved.Priority != core.PriorityHigh {
		t.Fatalf("Expected high priority, got %v", retrieved.Priority)
	}

	_, err = repos.Reviews.GetTask(ctx, 9999)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestReviewTaskOnePerAssessment(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	first, err := repos.Reviews.AddTask(ctx, testTask(5, core.PriorityUrgent))
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	_, err = repos.Reviews.AddTask(ctx, testTask(5, core.PriorityLow))
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}

	byAssessment, err := repos.Reviews.GetTaskByAssessment(ctx, 5)
	if err != nil {
		t.Fatalf("Failed to get task by assessment: %v", err)
	}
	if byAssessment == nil || byAssessment.Id != first.Id {
		t.Fatalf("Expected the first task back, got %+v", byAssessment)
	}

	missing, err := repos.Reviews.GetTaskByAssessment(ctx, 999)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if missing != nil {
		t.Fatal("Expected nil for unknown assessment")
	}
}

func TestReviewTaskUpdate(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	added, err := repos.Reviews.AddTask(ctx, testTask(2, core.PriorityMedium))
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	added.Status = core.ReviewCompleted
	added.Decision = core.DecisionApprove
	added.Reviewer = "sam"
	added.CompletedAt = time.Now().UTC()
	if _, err := repos.Reviews.UpdateTask(ctx, added); err != nil {
		t.Fatalf("Failed to update task: %v", err)
	}

	retrieved, err := repos.Reviews.GetTask(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get task: %v", err)
	}
	if retrieved.Status != core.ReviewCompleted {
		t.Fatalf("Expected completed status, got %v", retrieved.Status)
	}
	if retrieved.Decision != core.DecisionApprove {
		t.Fatalf("Expected approve decision, got %v", retrieved.Decision)
	}
}

func TestListTasksFilters(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	now := time.Now().UTC()
	tasks := []*core.ReviewTask{
		testTask(1, core.PriorityUrgent),
		testTask(2, core.PriorityLow),
		testTask(3, core.PriorityUrgent),
	}
	tasks[0].CreatedAt = now.Add(-2 * time.Hour)
	tasks[1].CreatedAt = now.Add(-1 * time.Hour)
	tasks[2].CreatedAt = now
	tasks[1].Status = core.ReviewCompleted
	tasks[2].EntityType = core.EntityImage

	for _, task := range tasks {
		if _, err := repos.Reviews.AddTask(ctx, task); err != nil {
			t.Fatalf("Failed to add task: %v", err)
		}
	}

	all, err := repos.Reviews.ListTasks(ctx, storage.ReviewTaskFilter{})
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(all))
	}
	// Oldest first
	if all[0].AssessmentId != 1 {
		t.Fatalf("Expected oldest task first, got assessment %d", all[0].AssessmentId)
	}

	pending, err := repos.Reviews.ListTasks(ctx, storage.ReviewTaskFilter{Status: core.ReviewPending})
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("Expected 2 pending tasks, got %d", len(pending))
	}

	urgent, err := repos.Reviews.ListTasks(ctx, storage.ReviewTaskFilter{Priority: core.PriorityUrgent})
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if len(urgent) != 2 {
		t.Fatalf("Expected 2 urgent tasks, got %d", len(urgent))
	}

	images, err := repos.Reviews.ListTasks(ctx, storage.ReviewTaskFilter{EntityType: core.EntityImage})
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("Expected 1 image task, got %d", len(images))
	}
}
