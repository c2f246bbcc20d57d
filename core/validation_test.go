package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJob() *Job {
	return &Job{
		Workspace: "ws1",
		Document:  DocumentRef{Workspace: "ws1", URI: "docs/manual.pdf"},
		Stages: []Stage{
			{Name: "extract", Status: StagePending},
			{Name: "chunk", Status: StagePending},
		},
	}
}

func TestValidateJob(t *testing.T) {
	t.Run("valid job passes", func(t *testing.T) {
		require.NoError(t, ValidateJob(validJob()))
	})

	t.Run("nil job fails", func(t *testing.T) {
		err := ValidateJob(nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("zero stages fails", func(t *testing.T) {
		job := validJob()
		job.Stages = nil
		err := ValidateJob(job)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, ErrNoStages)
	})

	t.Run("duplicate stage names fail", func(t *testing.T) {
		job := validJob()
		job.Stages = append(job.Stages, Stage{Name: "extract"})
		err := ValidateJob(job)
		assert.ErrorIs(t, err, ErrDuplicateStage)
	})

	t.Run("unnamed stage fails", func(t *testing.T) {
		job := validJob()
		job.Stages[0].Name = ""
		assert.ErrorIs(t, ValidateJob(job), ErrValidation)
	})

	t.Run("missing document URI fails", func(t *testing.T) {
		job := validJob()
		job.Document.URI = ""
		assert.ErrorIs(t, ValidateJob(job), ErrEmptyDocument)
	})

	t.Run("missing workspace fails", func(t *testing.T) {
		job := validJob()
		job.Document.Workspace = ""
		assert.ErrorIs(t, ValidateJob(job), ErrEmptyWorkspace)
	})
}

func TestValidateChunk(t *testing.T) {
	t.Run("valid chunk passes", func(t *testing.T) {
		require.NoError(t, ValidateChunk(&Chunk{Contents: "some text", Index: 0}))
	})

	t.Run("empty contents fail", func(t *testing.T) {
		assert.ErrorIs(t, ValidateChunk(&Chunk{}), ErrEmptyContents)
	})

	t.Run("negative index fails", func(t *testing.T) {
		assert.ErrorIs(t, ValidateChunk(&Chunk{Contents: "x", Index: -1}), ErrValidation)
	})
}

func TestValidateTransition(t *testing.T) {
	t.Run("legal transition passes", func(t *testing.T) {
		require.NoError(t, ValidateTransition("extract", StagePending, StageProcessing))
	})

	t.Run("completed to pending is rejected", func(t *testing.T) {
		err := ValidateTransition("extract", StageCompleted, StagePending)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
