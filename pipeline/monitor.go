package pipeline

import (
	"log/slog"

	"github.com/poiesic/docflow/core"
)

// JobMonitor provides hooks to observe job progression.
// Implement this interface to forward lifecycle events to callbacks,
// webhooks, or metrics; delivery concerns stay out of the state machine.
type JobMonitor interface {
	JobAccepted(job *core.Job)
	StageStarted(jobID core.ID, stage string)
	StageFinished(jobID core.ID, stage string, status core.StageStatus)
	JobFinished(job *core.Job)
}

// noopMonitor is a no-op implementation of JobMonitor.
type noopMonitor struct{}

var _ JobMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) JobAccepted(_ *core.Job)                               {}
func (n *noopMonitor) StageStarted(_ core.ID, _ string)                      {}
func (n *noopMonitor) StageFinished(_ core.ID, _ string, _ core.StageStatus) {}
func (n *noopMonitor) JobFinished(_ *core.Job)                               {}

// LogMonitor logs job lifecycle events through slog.
type LogMonitor struct {
	logger *slog.Logger
}

var _ JobMonitor = (*LogMonitor)(nil)

// NewLogMonitor creates a monitor logging at info level.
func NewLogMonitor(logger *slog.Logger) *LogMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMonitor{logger: logger.With("component", "pipeline")}
}

func (m *LogMonitor) JobAccepted(job *core.Job) {
	m.logger.Info("job accepted", "job", job.Id, "workspace", job.Workspace, "stages", len(job.Stages))
}

func (m *LogMonitor) StageStarted(jobID core.ID, stage string) {
	m.logger.Info("stage started", "job", jobID, "stage", stage)
}

func (m *LogMonitor) StageFinished(jobID core.ID, stage string, status core.StageStatus) {
	m.logger.Info("stage finished", "job", jobID, "stage", stage, "status", status.String())
}

func (m *LogMonitor) JobFinished(job *core.Job) {
	m.logger.Info("job finished", "job", job.Id, "status", job.Status.String())
}
