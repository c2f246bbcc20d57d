package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// JobStatus describes the overall state of a pipeline job.
// It is always derived from the statuses of the job's stages.
type JobStatus int

const (
	// JobPending means no stage has started yet.
	JobPending JobStatus = iota + 1
	// JobProcessing means at least one stage has started and none has failed.
	JobProcessing
	// JobCompleted means every stage finished as completed or skipped.
	JobCompleted
	// JobFailed means at least one stage failed with retries exhausted.
	JobFailed
	// JobCancelled means the job was cancelled before completion.
	JobCancelled
)

func (s JobStatus) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobProcessing:
		return "processing"
	case JobCompleted:
		return "completed"
	case JobFailed:
		return "failed"
	case JobCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal reports whether the job has finished for good.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobCompleted, JobFailed, JobCancelled:
		return true
	}
	return false
}

// StageStatus describes the state of a single pipeline stage.
type StageStatus int

const (
	StagePending StageStatus = iota + 1
	StageProcessing
	StageCompleted
	StageFailed
	StageSkipped
	StageCancelled
)

func (s StageStatus) String() string {
	switch s {
	case StagePending:
		return "pending"
	case StageProcessing:
		return "processing"
	case StageCompleted:
		return "completed"
	case StageFailed:
		return "failed"
	case StageSkipped:
		return "skipped"
	case StageCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal reports whether the status permits no further transitions.
func (s StageStatus) Terminal() bool {
	switch s {
	case StageCompleted, StageFailed, StageSkipped, StageCancelled:
		return true
	}
	return false
}

// CanTransitionStage reports whether a stage may move from one status to another.
// Transitions are monotonic: terminal statuses permit no further movement.
func CanTransitionStage(from, to StageStatus) bool {
	if from.Terminal() {
		return false
	}
	switch from {
	case StagePending:
		return to == StageProcessing || to == StageSkipped || to == StageCancelled
	case StageProcessing:
		return to == StageCompleted || to == StageFailed || to == StageCancelled
	}
	return false
}

// DocumentRef identifies a source document within a workspace.
type DocumentRef struct {
	Workspace   string
	URI         string
	ContentType string
}

// DocumentId returns the deterministic ID for the referenced document.
func (d DocumentRef) DocumentId() ID {
	return IDFromContent(d.Workspace + "/" + d.URI)
}

// Stage is one named step of a job's pipeline.
type Stage struct {
	Name      string
	Status    StageStatus
	Attempts  int // Total execution attempts, including retries
	StartedAt time.Time
	EndedAt   time.Time
	Error     string
	Metrics   map[string]float64
}

// Duration returns the wall-clock time the stage spent executing.
func (s *Stage) Duration() time.Duration {
	if s.StartedAt.IsZero() || s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Job is a tracked unit of work carrying one document through the pipeline.
// The stage list is fixed at creation and mutated only by the orchestrator.
type Job struct {
	Id          ID
	Workspace   string
	Document    DocumentRef
	Status      JobStatus
	Stages      []Stage
	Priority    int
	Cursor      int // Index of the last completed stage, -1 before any
	Metadata    map[string]string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt time.Time
}

// ComputeJobStatus derives a job status from its stage statuses.
// Failed wins over cancelled; a job is completed only when every stage is
// completed or skipped.
func ComputeJobStatus(stages []Stage) JobStatus {
	if len(stages) == 0 {
		return JobPending
	}
	var pending, completed, failed, skipped, cancelled int
	for i := range stages {
		switch stages[i].Status {
		case StagePending:
			pending++
		case StageCompleted:
			completed++
		case StageFailed:
			failed++
		case StageSkipped:
			skipped++
		case StageCancelled:
			cancelled++
		}
	}
	switch {
	case failed > 0:
		return JobFailed
	case cancelled > 0:
		return JobCancelled
	case completed+skipped == len(stages):
		return JobCompleted
	case pending == len(stages):
		return JobPending
	}
	return JobProcessing
}

// Progress summarizes how far a job has advanced through its stages.
type Progress struct {
	CurrentStage    string
	CompletedStages int
	TotalStages     int
	Percentage      float64
}

// Progress computes the job's current progress. CurrentStage is the first
// stage in processing, else the first pending stage, else "completed".
func (j *Job) Progress() Progress {
	p := Progress{TotalStages: len(j.Stages)}
	for i := range j.Stages {
		if j.Stages[i].Status == StageCompleted || j.Stages[i].Status == StageSkipped {
			p.CompletedStages++
		}
	}
	for i := range j.Stages {
		if j.Stages[i].Status == StageProcessing {
			p.CurrentStage = j.Stages[i].Name
			break
		}
	}
	if p.CurrentStage == "" {
		for i := range j.Stages {
			if j.Stages[i].Status == StagePending {
				p.CurrentStage = j.Stages[i].Name
				break
			}
		}
	}
	if p.CurrentStage == "" {
		p.CurrentStage = "completed"
	}
	if p.TotalStages > 0 {
		p.Percentage = float64(p.CompletedStages) / float64(p.TotalStages) * 100.0
	}
	return p
}

// Checkpoint is a persisted cursor marking the last completed stage of a job,
// enabling crash-safe resumption.
type Checkpoint struct {
	JobId     ID
	Cursor    int    // Index of the last completed stage, -1 before any
	StageName string // Name of the stage at Cursor, for consistency checks
	Artifacts map[string]string
	UpdatedAt time.Time
}

// Chunk is one segment of a document's extracted text, in reading order.
type Chunk struct {
	Id         ID
	DocumentId ID
	Index      int // Position in reading order
	Contents   string
	Depth      int // Hierarchy depth supplied by extraction (0 = root)
	Vector     []float32
	Metrics    map[string]float64
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// Image is a figure or photo extracted from a document page.
type Image struct {
	Id         ID
	DocumentId ID
	Page       int
	Caption    string
	OCRText    string
	Format     string
	Width      int
	Height     int
	Vector     []float32
	Metrics    map[string]float64
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// Product is a structured entity enriched from a document's content.
type Product struct {
	Id         ID
	DocumentId ID
	Name       string
	Attributes map[string]string
	Vector     []float32
	Metrics    map[string]float64
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// EntityType identifies which kind of entity a quality assessment targets.
type EntityType int

const (
	EntityProduct EntityType = iota + 1
	EntityChunk
	EntityImage
)

func (t EntityType) String() string {
	switch t {
	case EntityProduct:
		return "product"
	case EntityChunk:
		return "chunk"
	case EntityImage:
		return "image"
	}
	return "unknown"
}

// ParseEntityType converts a string to an EntityType.
// Returns false if the string names no known entity type.
func ParseEntityType(s string) (EntityType, bool) {
	switch s {
	case "product":
		return EntityProduct, true
	case "chunk":
		return EntityChunk, true
	case "image":
		return EntityImage, true
	}
	return 0, false
}

// Severity ranks how badly a quality metric missed its threshold.
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	}
	return "unknown"
}

// Issue records a single quality metric that fell below its threshold.
type Issue struct {
	Type        string
	Severity    Severity
	Metric      string
	Value       float64
	Expected    float64
	AutoFixable bool
}

// QualityAssessment is a computed composite score plus issue list for one entity.
type QualityAssessment struct {
	Id               ID
	EntityId         ID
	EntityType       EntityType
	Metrics          map[string]float64
	OverallScore     float64
	PassesThresholds bool
	NeedsHumanReview bool
	Issues           []Issue
	Recommendations  []string
	AssessedAt       time.Time
}

// ReviewPriority orders human-review tasks.
type ReviewPriority int

const (
	PriorityLow ReviewPriority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

func (p ReviewPriority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	}
	return "unknown"
}

// ReviewStatus is the lifecycle state of a review task.
type ReviewStatus int

const (
	ReviewPending ReviewStatus = iota + 1
	ReviewCompleted
	ReviewEscalated
)

func (s ReviewStatus) String() string {
	switch s {
	case ReviewPending:
		return "pending"
	case ReviewCompleted:
		return "completed"
	case ReviewEscalated:
		return "escalated"
	}
	return "unknown"
}

// ReviewDecision is the outcome a reviewer records on a task.
type ReviewDecision int

const (
	DecisionApprove ReviewDecision = iota + 1
	DecisionReject
	DecisionNeedsImprovement
	DecisionEscalate
)

func (d ReviewDecision) String() string {
	switch d {
	case DecisionApprove:
		return "approve"
	case DecisionReject:
		return "reject"
	case DecisionNeedsImprovement:
		return "needs_improvement"
	case DecisionEscalate:
		return "escalate"
	}
	return "unknown"
}

// ParseReviewDecision converts a string to a ReviewDecision.
// Returns false if the string names no known decision.
func ParseReviewDecision(s string) (ReviewDecision, bool) {
	switch s {
	case "approve":
		return DecisionApprove, true
	case "reject":
		return DecisionReject, true
	case "needs_improvement":
		return DecisionNeedsImprovement, true
	case "escalate":
		return DecisionEscalate, true
	}
	return 0, false
}

// ReviewTask is a human-escalation record created when automated quality
// gating fails. At most one task exists per triggering assessment.
type ReviewTask struct {
	Id           ID
	EntityId     ID
	EntityType   EntityType
	AssessmentId ID
	ReviewType   string
	Priority     ReviewPriority
	Status       ReviewStatus
	Assessment   QualityAssessment
	Reviewer     string
	Decision     ReviewDecision // Zero until the task is completed
	Notes        string
	CreatedAt    time.Time
	CompletedAt  time.Time
}

// EdgeType classifies a relationship edge between content entities.
type EdgeType int

const (
	// EdgeSequential links consecutive chunks in reading order.
	EdgeSequential EdgeType = iota + 1
	// EdgeSemantic links content with high lexical or vector similarity.
	EdgeSemantic
	// EdgeHierarchical links a parent chunk to a child at the next depth.
	EdgeHierarchical
)

func (t EdgeType) String() string {
	switch t {
	case EdgeSequential:
		return "sequential"
	case EdgeSemantic:
		return "semantic"
	case EdgeHierarchical:
		return "hierarchical"
	}
	return "unknown"
}

// ValidationStatus tracks whether an edge has been human-validated.
type ValidationStatus int

const (
	ValidationUnreviewed ValidationStatus = iota + 1
	ValidationConfirmed
	ValidationRejected
)

// RelationshipEdge is a typed, scored link between two entities.
// Edges are unique per (source, target, type).
type RelationshipEdge struct {
	SourceId      ID
	TargetId      ID
	Type          EdgeType
	Confidence    float64
	Strength      float64
	Bidirectional bool
	Label         string // "primary" or "related" for image-to-chunk links
	Validation    ValidationStatus
	CreatedAt     time.Time
}
