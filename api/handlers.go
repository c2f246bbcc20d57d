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


package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/pipeline"
	"github.com/poiesic/docflow/storage"
)

type stagePayload struct {
	Name       string             `json:"name"`
	Status     string             `json:"status"`
	Attempts   int                `json:"attempts"`
	StartedAt  *time.Time         `json:"startedAt,omitempty"`
	EndedAt    *time.Time         `json:"endedAt,omitempty"`
	DurationMs int64              `json:"durationMs"`
	Error      string             `json:"error,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

type jobPayload struct {
	Id          core.ID           `json:"id"`
	Workspace   string            `json:"workspace"`
	URI         string            `json:"uri"`
	Status      string            `json:"status"`
	Priority    int               `json:"priority"`
	Stages      []stagePayload    `json:"stages"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
}

type progressPayload struct {
	CurrentStage    string  `json:"currentStage"`
	CompletedStages int     `json:"completedStages"`
	TotalStages     int     `json:"totalStages"`
	Percentage      float64 `json:"percentage"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func stageToPayload(stage core.Stage) stagePayload {
	return stagePayload{
		Name:       stage.Name,
		Status:     stage.Status.String(),
		Attempts:   stage.Attempts,
		StartedAt:  timePtr(stage.StartedAt),
		EndedAt:    timePtr(stage.EndedAt),
		DurationMs: stage.Duration().Milliseconds(),
		Error:      stage.Error,
		Metrics:    stage.Metrics,
	}
}

func jobToPayload(job *core.Job) jobPayload {
	stages := make([]stagePayload, len(job.Stages))
	for i, stage := range job.Stages {
		stages[i] = stageToPayload(stage)
	}
	return jobPayload{
		Id:          job.Id,
		Workspace:   job.Workspace,
		URI:         job.Document.URI,
		Status:      job.Status.String(),
		Priority:    job.Priority,
		Stages:      stages,
		Metadata:    job.Metadata,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
		CompletedAt: timePtr(job.CompletedAt),
	}
}

func pathID(r *http.Request) (core.ID, bool) {
	raw, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return core.ID(raw), true
}

type submitRequest struct {
	Workspace   string            `json:"workspace"`
	URI         string            `json:"uri"`
	ContentType string            `json:"contentType"`
	Stages      []string          `json:"stages"`
	Priority    int               `json:"priority"`
	Metadata    map[string]string `json:"metadata"`
}

// handleSubmit accepts a job and returns 202 before any stage runs.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "malformed request body")
		return
	}

	job, err := s.orchestrator.Submit(r.Context(), pipeline.SubmitRequest{
		Workspace: req.Workspace,
		Document: core.DocumentRef{
			Workspace:   req.Workspace,
			URI:         req.URI,
			ContentType: req.ContentType,
		},
		Stages:   req.Stages,
		Priority: req.Priority,
		Metadata: req.Metadata,
	})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusAccepted, jobToPayload(job))
}

// handleJobStatus returns the best-known state without blocking on completion.
func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeValidationError(w, "invalid job id")
		return
	}

	job, err := s.registry.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	progress := job.Progress()

	writeJSON(w, http.StatusOK, struct {
		Id       core.ID         `json:"id"`
		Status   string          `json:"status"`
		Progress progressPayload `json:"progress"`
	}{
		Id:     job.Id,
		Status: job.Status.String(),
		Progress: progressPayload{
			CurrentStage:    progress.CurrentStage,
			CompletedStages: progress.CompletedStages,
			TotalStages:     progress.TotalStages,
			Percentage:      progress.Percentage,
		},
	})
}

// handleJobProgress returns per-stage timestamps, durations, errors, and
// metrics, plus aggregate attempt and quality figures.
func (s *Server) handleJobProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeValidationError(w, "invalid job id")
		return
	}

	job, err := s.registry.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	totalAttempts := 0
	var totalDuration time.Duration
	passRate := -1.0
	for i := range job.Stages {
		totalAttempts += job.Stages[i].Attempts
		totalDuration += job.Stages[i].Duration()
		if rate, ok := job.Stages[i].Metrics["pass_rate"]; ok {
			passRate = rate
		}
	}

	payload := struct {
		Job             jobPayload `json:"job"`
		TotalAttempts   int        `json:"totalAttempts"`
		TotalDurationMs int64      `json:"totalDurationMs"`
		QualityPassRate *float64   `json:"qualityPassRate,omitempty"`
	}{
		Job:             jobToPayload(job),
		TotalAttempts:   totalAttempts,
		TotalDurationMs: totalDuration.Milliseconds(),
	}
	if passRate >= 0 {
		payload.QualityPassRate = &passRate
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleCancelJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeValidationError(w, "invalid job id")
		return
	}

	job, err := s.orchestrator.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, jobToPayload(job))
}

type assessRequest struct {
	EntityId   core.ID `json:"entityId"`
	EntityType string  `json:"entityType"`
}

type assessmentPayload struct {
	Id               core.ID            `json:"id"`
	EntityId         core.ID            `json:"entityId"`
	EntityType       string             `json:"entityType"`
	Metrics          map[string]float64 `json:"metrics"`
	OverallScore     float64            `json:"overallScore"`
	PassesThresholds bool               `json:"passesThresholds"`
	NeedsHumanReview bool               `json:"needsHumanReview"`
	Issues           []issuePayload     `json:"issues"`
	Recommendations  []string           `json:"recommendations"`
	AssessedAt       time.Time          `json:"assessedAt"`
}

type issuePayload struct {
	Type        string  `json:"type"`
	Severity    string  `json:"severity"`
	Metric      string  `json:"metric"`
	Value       float64 `json:"value"`
	Expected    float64 `json:"expected"`
	AutoFixable bool    `json:"autoFixable"`
}

func assessmentToPayload(assessment *core.QualityAssessment) assessmentPayload {
	issues := make([]issuePayload, len(assessment.Issues))
	for i, issue := range assessment.Issues {
		issues[i] = issuePayload{
			Type:        issue.Type,
			Severity:    issue.Severity.String(),
			Metric:      issue.Metric,
			Value:       issue.Value,
			Expected:    issue.Expected,
			AutoFixable: issue.AutoFixable,
		}
	}
	return assessmentPayload{
		Id:               assessment.Id,
		EntityId:         assessment.EntityId,
		EntityType:       assessment.EntityType.String(),
		Metrics:          assessment.Metrics,
		OverallScore:     assessment.OverallScore,
		PassesThresholds: assessment.PassesThresholds,
		NeedsHumanReview: assessment.NeedsHumanReview,
		Issues:           issues,
		Recommendations:  assessment.Recommendations,
		AssessedAt:       assessment.AssessedAt,
	}
}

// handleAssess re-assesses a stored entity on demand and, when the result
// needs human review, dispatches a review task as a side effect.
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "malformed request body")
		return
	}
	entityType, ok := core.ParseEntityType(req.EntityType)
	if !ok {
		writeValidationError(w, "unknown entity type")
		return
	}

	metrics, err := s.entityMetrics(r, req.EntityId, entityType)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	assessment, err := s.assessor.Assess(req.EntityId, entityType, metrics)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	stored, err := s.stores.Assessments.AddAssessment(r.Context(), assessment)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	task, err := s.dispatcher.Dispatch(r.Context(), stored)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	payload := struct {
		Assessment assessmentPayload `json:"assessment"`
		ReviewTask *reviewPayload    `json:"reviewTask,omitempty"`
	}{Assessment: assessmentToPayload(stored)}
	if task != nil {
		p := reviewToPayload(task)
		payload.ReviewTask = &p
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) entityMetrics(r *http.Request, id core.ID, entityType core.EntityType) (map[string]float64, error) {
	switch entityType {
	case core.EntityProduct:
		product, err := s.stores.Products.GetProduct(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return product.Metrics, nil
	case core.EntityChunk:
		chunk, err := s.stores.Chunks.GetChunk(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return chunk.Metrics, nil
	default:
		image, err := s.stores.Images.GetImage(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return image.Metrics, nil
	}
}

type reviewPayload struct {
	Id           core.ID    `json:"id"`
	EntityId     core.ID    `json:"entityId"`
	EntityType   string     `json:"entityType"`
	AssessmentId core.ID    `json:"assessmentId"`
	ReviewType   string     `json:"reviewType"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	Reviewer     string     `json:"reviewer,omitempty"`
	Decision     string     `json:"decision,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

func reviewToPayload(task *core.ReviewTask) reviewPayload {
	payload := reviewPayload{
		Id:           task.Id,
		EntityId:     task.EntityId,
		EntityType:   task.EntityType.String(),
		AssessmentId: task.AssessmentId,
		ReviewType:   task.ReviewType,
		Priority:     task.Priority.String(),
		Status:       task.Status.String(),
		Reviewer:     task.Reviewer,
		Notes:        task.Notes,
		CreatedAt:    task.CreatedAt,
		CompletedAt:  timePtr(task.CompletedAt),
	}
	if task.Decision != 0 {
		payload.Decision = task.Decision.String()
	}
	return payload
}

func parseReviewStatus(s string) (core.ReviewStatus, bool) {
	switch s {
	case "pending":
		return core.ReviewPending, true
	case "completed":
		return core.ReviewCompleted, true
	case "escalated":
		return core.ReviewEscalated, true
	}
	return 0, false
}

func parseReviewPriority(s string) (core.ReviewPriority, bool) {
	switch s {
	case "low":
		return core.PriorityLow, true
	case "medium":
		return core.PriorityMedium, true
	case "high":
		return core.PriorityHigh, true
	case "urgent":
		return core.PriorityUrgent, true
	}
	return 0, false
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := storage.ReviewTaskFilter{}

	if raw := query.Get("status"); raw != "" {
		status, ok := parseReviewStatus(raw)
		if !ok {
			writeValidationError(w, "unknown review status")
			return
		}
		filter.Status = status
	}
	if raw := query.Get("priority"); raw != "" {
		priority, ok := parseReviewPriority(raw)
		if !ok {
			writeValidationError(w, "unknown review priority")
			return
		}
		filter.Priority = priority
	}
	if raw := query.Get("entityType"); raw != "" {
		entityType, ok := core.ParseEntityType(raw)
		if !ok {
			writeValidationError(w, "unknown entity type")
			return
		}
		filter.EntityType = entityType
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeValidationError(w, "invalid limit")
			return
		}
		filter.Limit = limit
	}

	tasks, err := s.dispatcher.List(r.Context(), filter)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	payloads := make([]reviewPayload, len(tasks))
	for i, task := range tasks {
		payloads[i] = reviewToPayload(task)
	}
	writeJSON(w, http.StatusOK, struct {
		Tasks []reviewPayload `json:"tasks"`
	}{Tasks: payloads})
}

type completeReviewRequest struct {
	Decision string `json:"decision"`
	Reviewer string `json:"reviewer"`
	Notes    string `json:"notes"`
}

func (s *Server) handleCompleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeValidationError(w, "invalid review task id")
		return
	}

	var req completeReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "malformed request body")
		return
	}
	decision, ok := core.ParseReviewDecision(req.Decision)
	if !ok {
		writeValidationError(w, "unknown decision")
		return
	}

	task, err := s.dispatcher.Complete(r.Context(), id, decision, req.Reviewer, req.Notes)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewToPayload(task))
}
