package quality

import (
	"context"
	"testing"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
	badgerstore "github.com/poiesic/docflow/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *badgerstore.Repositories) {
	t.Helper()

	repos, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	dispatcher, err := NewDispatcher(repos.Reviews)
	require.NoError(t, err)
	return dispatcher, repos
}

func persistedAssessment(t *testing.T, repos *badgerstore.Repositories, assessment *core.QualityAssessment) *core.QualityAssessment {
	t.Helper()
	stored, err := repos.Assessments.AddAssessment(context.Background(), assessment)
	require.NoError(t, err)
	return stored
}

func TestNewDispatcher_RequiresRepository(t *testing.T) {
	_, err := NewDispatcher(nil)
	assert.ErrorIs(t, err, ErrReviewRepositoryRequired)
}

func TestDispatch_PassingAssessmentCreatesNoTask(t *testing.T) {
	dispatcher, repos := newTestDispatcher(t)

	assessment := persistedAssessment(t, repos, &core.QualityAssessment{
		EntityId:         42,
		EntityType:       core.EntityProduct,
		OverallScore:     0.95,
		PassesThresholds: true,
		NeedsHumanReview: false,
	})

	task, err := dispatcher.Dispatch(context.Background(), assessment)
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestDispatch_CriticalIssueIsUrgent(t *testing.T) {
	dispatcher, repos := newTestDispatcher(t)

	assessment := persistedAssessment(t, repos, &core.QualityAssessment{
		EntityId:         42,
		EntityType:       core.EntityProduct,
		OverallScore:     0.4,
		NeedsHumanReview: true,
		Issues: []core.Issue{
			{Type: IssueEmbedding, Severity: core.SeverityCritical, Metric: "embedding_coverage"},
		},
	})

	task, err := dispatcher.Dispatch(context.Background(), assessment)
	require.NoError(t, err)
	require.NotNil(t, task)

	assert.Equal(t, core.PriorityUrgent, task.Priority)
	assert.Equal(t, ReviewEmbedding, task.ReviewType)
	assert.Equal(t, core.ReviewPending, task.Status)
	assert.Equal(t, assessment.Id, task.AssessmentId)
}

func TestDispatch_AtMostOncePerAssessment(t *testing.T) {
	dispatcher, repos := newTestDispatcher(t)

	assessment := persistedAssessment(t, repos, &core.QualityAssessment{
		EntityId:         7,
		EntityType:       core.EntityChunk,
		NeedsHumanReview: true,
		Issues: []core.Issue{
			{Type: IssueQuality, Severity: core.SeverityHigh, Metric: "coherence"},
		},
	})

	first, err := dispatcher.Dispatch(context.Background(), assessment)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := dispatcher.Dispatch(context.Background(), assessment)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.Id, second.Id)

	tasks, err := dispatcher.List(context.Background(), storage.ReviewTaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestPriorityFor(t *testing.T) {
	high := core.Issue{Severity: core.SeverityHigh}

	tests := []struct {
		name     string
		issues   []core.Issue
		expected core.ReviewPriority
	}{
		{"critical wins", []core.Issue{high, {Severity: core.SeverityCritical}}, core.PriorityUrgent},
		{"three high", []core.Issue{high, high, high}, core.PriorityHigh},
		{"one high", []core.Issue{high}, core.PriorityMedium},
		{"two high", []core.Issue{high, high}, core.PriorityMedium},
		{"only medium and low", []core.Issue{{Severity: core.SeverityMedium}, {Severity: core.SeverityLow}}, core.PriorityLow},
		{"no issues", nil, core.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, priorityFor(tt.issues))
		})
	}
}

func TestReviewTypeFor(t *testing.T) {
	assert.Equal(t, ReviewEmbedding, reviewTypeFor([]core.Issue{
		{Type: IssueQuality}, {Type: IssueEmbedding},
	}))
	assert.Equal(t, ReviewCompleteness, reviewTypeFor([]core.Issue{
		{Type: IssueValidation}, {Type: IssueCompleteness},
	}))
	assert.Equal(t, ReviewValidation, reviewTypeFor([]core.Issue{
		{Type: IssueValidation},
	}))
	assert.Equal(t, ReviewQuality, reviewTypeFor(nil))
}

func TestComplete(t *testing.T) {
	t.Run("approve completes the task", func(t *testing.T) {
		dispatcher, repos := newTestDispatcher(t)

		assessment := persistedAssessment(t, repos, &core.QualityAssessment{
			EntityId:         7,
			EntityType:       core.EntityChunk,
			NeedsHumanReview: true,
		})
		task, err := dispatcher.Dispatch(context.Background(), assessment)
		require.NoError(t, err)

		completed, err := dispatcher.Complete(context.Background(), task.Id, core.DecisionApprove, "reviewer-1", "looks fine")
		require.NoError(t, err)

		assert.Equal(t, core.ReviewCompleted, completed.Status)
		assert.Equal(t, core.DecisionApprove, completed.Decision)
		assert.Equal(t, "reviewer-1", completed.Reviewer)
		assert.False(t, completed.CompletedAt.IsZero())
	})

	t.Run("escalate sets escalated status", func(t *testing.T) {
		dispatcher, repos := newTestDispatcher(t)

		assessment := persistedAssessment(t, repos, &core.QualityAssessment{
			EntityId:         8,
			EntityType:       core.EntityImage,
			NeedsHumanReview: true,
		})
		task, err := dispatcher.Dispatch(context.Background(), assessment)
		require.NoError(t, err)

		escalated, err := dispatcher.Complete(context.Background(), task.Id, core.DecisionEscalate, "reviewer-2", "")
		require.NoError(t, err)
		assert.Equal(t, core.ReviewEscalated, escalated.Status)
	})

	t.Run("completing twice fails", func(t *testing.T) {
		dispatcher, repos := newTestDispatcher(t)

		assessment := persistedAssessment(t, repos, &core.QualityAssessment{
			EntityId:         9,
			EntityType:       core.EntityChunk,
			NeedsHumanReview: true,
		})
		task, err := dispatcher.Dispatch(context.Background(), assessment)
		require.NoError(t, err)

		_, err = dispatcher.Complete(context.Background(), task.Id, core.DecisionReject, "reviewer-1", "")
		require.NoError(t, err)

		_, err = dispatcher.Complete(context.Background(), task.Id, core.DecisionApprove, "reviewer-2", "")
		assert.ErrorIs(t, err, core.ErrInvalidTransition)
	})

	t.Run("unknown task", func(t *testing.T) {
		dispatcher, _ := newTestDispatcher(t)

		_, err := dispatcher.Complete(context.Background(), 9999, core.DecisionApprove, "reviewer-1", "")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
