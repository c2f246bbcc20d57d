package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

func newTestRepos(t *testing.T) *Repositories {
	t.Helper()

	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	t.Cleanup(func() { repos.Close() })
	return repos
}

func testJob(workspace, uri string) *core.Job {
	return &core.Job{
		Workspace: workspace,
		Document:  core.DocumentRef{Workspace: workspace, URI: uri},
		Status:    core.JobPending,
		Stages: []core.Stage{
			{Name: "extract", Status: core.StagePending},
			{Name: "embed", Status: core.StagePending},
		},
		Cursor: -1,
	}
}

func TestJobBasics(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	added, err := repos.Jobs.AddJob(ctx, testJob("acme", "manual.md"))
	if err != nil {
		t.Fatalf("Failed to add job: %v", err)
	}
	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be set")
	}

	retrieved, err := repos.Jobs.GetJob(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get job: %v", err)
	}
	if retrieved.Workspace != "acme" {
		t.Fatalf("Expected workspace 'acme', got %q", retrieved.Workspace)
	}
	if len(retrieved.Stages) != 2 {
		t.Fatalf("Expected 2 stages, got %d", len(retrieved.Stages))
	}
	if retrieved.Cursor != -1 {
		t.Fatalf("Expected cursor -1, got %d", retrieved.Cursor)
	}
}

func TestJobNotFound(t *testing.T) {
	repos := newTestRepos(t)

	_, err := repos.Jobs.GetJob(context.Background(), 9999)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	_, err = repos.Jobs.UpdateJob(context.Background(), testJob("acme", "nope.md"))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on update, got %v", err)
	}
}

func TestJobUpdate(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	added, err := repos.Jobs.AddJob(ctx, testJob("acme", "manual.md"))
	if err != nil {
		t.Fatalf("Failed to add job: %v", err)
	}
	createdAt := added.CreatedAt

	added.Status = core.JobProcessing
	added.Stages[0].Status = core.StageProcessing
	added.Stages[0].Attempts = 1
	updated, err := repos.Jobs.UpdateJob(ctx, added)
	if err != nil {
		t.Fatalf("Failed to update job: %v", err)
	}
	if !updated.CreatedAt.Equal(createdAt) {
		t.Fatal("CreatedAt must be immutable across updates")
	}

	retrieved, err := repos.Jobs.GetJob(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get job: %v", err)
	}
	if retrieved.Status != core.JobProcessing {
		t.Fatalf("Expected processing status, got %v", retrieved.Status)
	}
	if retrieved.Stages[0].Attempts != 1 {
		t.Fatalf("Expected 1 attempt, got %d", retrieved.Stages[0].Attempts)
	}
}

func TestListJobsFilters(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	now := time.Now().UTC()
	jobs := []*core.Job{
		testJob("acme", "a.md"),
		testJob("acme", "b.md"),
		testJob("globex", "c.md"),
	}
	jobs[0].CreatedAt = now.Add(-2 * time.Hour)
	jobs[1].CreatedAt = now.Add(-1 * time.Hour)
	jobs[2].CreatedAt = now
	jobs[2].Status = core.JobCompleted

	for _, job := range jobs {
		if _, err := repos.Jobs.AddJob(ctx, job); err != nil {
			t.Fatalf("Failed to add job: %v", err)
		}
	}

	all, err := repos.Jobs.ListJobs(ctx, storage.JobFilter{})
	if err != nil {
		t.Fatalf("Failed to list jobs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 jobs, got %d", len(all))
	}
	// Newest first
	if all[0].Document.URI != "c.md" {
		t.Fatalf("Expected newest job first, got %q", all[0].Document.URI)
	}

	acme, err := repos.Jobs.ListJobs(ctx, storage.JobFilter{Workspace: "acme"})
	if err != nil {
		t.Fatalf("Failed to list jobs: %v", err)
	}
	if len(acme) != 2 {
		t.Fatalf("Expected 2 acme jobs, got %d", len(acme))
	}

	completed, err := repos.Jobs.ListJobs(ctx, storage.JobFilter{Status: core.JobCompleted})
	if err != nil {
		t.Fatalf("Failed to list jobs: %v", err)
	}
	if len(completed) != 1 {
		t.Fatalf("Expected 1 completed job, got %d", len(completed))
	}

	recent, err := repos.Jobs.ListJobs(ctx, storage.JobFilter{Since: now.Add(-90 * time.Minute)})
	if err != nil {
		t.Fatalf("Failed to list jobs: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent jobs, got %d", len(recent))
	}

	limited, err := repos.Jobs.ListJobs(ctx, storage.JobFilter{Limit: 1})
	if err != nil {
		t.Fatalf("Failed to list jobs: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("Expected 1 job with limit, got %d", len(limited))
	}
}
