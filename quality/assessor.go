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
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/poiesic/docflow/core"
)

// Metric weight tables per entity type. Weights within a table sum to 1.
var (
	productWeights = map[string]float64{
		"quality":              0.30,
		"confidence":           0.20,
		"completeness":         0.25,
		"embedding_coverage":   0.15,
		"embedding_confidence": 0.10,
	}

	chunkWeights = map[string]float64{
		"coherence":             0.30,
		"quality":               0.25,
		"boundary_quality":      0.25,
		"semantic_completeness": 0.20,
	}

	imageWeights = map[string]float64{
		"quality":            0.30,
		"relevance":          0.25,
		"ocr_confidence":     0.20,
		"embedding_coverage": 0.15,
		"format_validity":    0.10,
	}
)

// Issue types, also used for review type derivation.
const (
	IssueEmbedding    = "embedding"
	IssueCompleteness = "completeness"
	IssueValidation   = "validation"
	IssueQuality      = "quality"
)

// recommendations maps issue types to a suggested remediation.
var recommendations = map[string]string{
	IssueEmbedding:    "regenerate the embedding for this entity",
	IssueCompleteness: "re-run extraction to fill in missing content",
	IssueValidation:   "verify the entity's structure and format",
	IssueQuality:      "review the entity content manually",
}

// Assessor computes weighted composite quality scores from entity metrics.
type Assessor struct {
	config *Config
	logger *slog.Logger
}

// AssessorOption is a functional option for configuring an Assessor.
type AssessorOption func(*Assessor)

// WithAssessorLogger sets the logger used by the assessor.
func WithAssessorLogger(logger *slog.Logger) AssessorOption {
	return func(a *Assessor) {
		a.logger = logger
	}
}

// NewAssessor creates an assessor with the given thresholds.
// A nil config falls back to DefaultConfig.
func NewAssessor(config *Config, opts ...AssessorOption) (*Assessor, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	assessor := &Assessor{
		config: config,
		logger: slog.Default().With("component", "quality-assessor"),
	}
	for _, opt := range opts {
		opt(assessor)
	}
	return assessor, nil
}

// weightsFor returns the metric weight table for an entity type.
func weightsFor(entityType core.EntityType) (map[string]float64, error) {
	switch entityType {
	case core.EntityProduct:
		return productWeights, nil
	case core.EntityChunk:
		return chunkWeights, nil
	case core.EntityImage:
		return imageWeights, nil
	default:
		return nil, ErrUnknownEntityType
	}
}

// Assess computes the composite score and issues for an entity's metrics.
// Metrics missing from the input are treated as 0: an entity that never got
// an embedding has embedding_coverage 0, not "unknown".
// The returned assessment has no ID; persisting it assigns one.
func (a *Assessor) Assess(entityID core.ID, entityType core.EntityType, metrics map[string]float64) (*core.QualityAssessment, error) {
	weights, err := weightsFor(entityType)
	if err != nil {
		return nil, err
	}

	var overall float64
	var issues []core.Issue
	recSet := map[string]bool{}

	for metric, weight := range weights {
		value := metrics[metric]
		overall += weight * value

		threshold := a.config.thresholdFor(metric)
		if value >= threshold {
			continue
		}

		issueType := classifyMetric(metric)
		issues = append(issues, core.Issue{
			Type:        issueType,
			Severity:    severityFor(value, threshold),
			Metric:      metric,
			Value:       value,
			Expected:    threshold,
			AutoFixable: issueType == IssueEmbedding,
		})
		recSet[issueType] = true
	}

	// Map iteration order is random; keep issue order stable.
	slices.SortFunc(issues, func(a, b core.Issue) int {
		return strings.Compare(a.Metric, b.Metric)
	})

	passes := true
	for _, issue := range issues {
		if issue.Severity == core.SeverityHigh || issue.Severity == core.SeverityCritical {
			passes = false
			break
		}
	}

	var recs []string
	for _, issueType := range []string{IssueEmbedding, IssueCompleteness, IssueValidation, IssueQuality} {
		if recSet[issueType] {
			recs = append(recs, recommendations[issueType])
		}
	}

	assessment := &core.QualityAssessment{
		EntityId:         entityID,
		EntityType:       entityType,
		Metrics:          metrics,
		OverallScore:     overall,
		PassesThresholds: passes,
		NeedsHumanReview: !passes || overall < a.config.primaryThresholdFor(entityType),
		Issues:           issues,
		Recommendations:  recs,
		AssessedAt:       time.Now().UTC(),
	}

	a.logger.Debug("assessed entity",
		"entity", entityID,
		"type", entityType.String(),
		"score", overall,
		"issues", len(issues),
		"needsReview", assessment.NeedsHumanReview)
	return assessment, nil
}

// severityFor calibrates issue severity from how far a metric fell below
// its threshold. A value below half the threshold, or below 0.2 absolute,
// is critical; then a gap of 0.3 is high, 0.15 medium, anything closer low.
func severityFor(value, threshold float64) core.Severity {
	if value < 0.5*threshold || value < 0.2 {
		return core.SeverityCritical
	}

	gap := threshold - value
	switch {
	case gap >= 0.3:
		return core.SeverityHigh
	case gap >= 0.15:
		return core.SeverityMedium
	default:
		return core.SeverityLow
	}
}

// classifyMetric maps a metric name to its issue type.
func classifyMetric(metric string) string {
	switch {
	case strings.Contains(metric, "embedding"):
		return IssueEmbedding
	case strings.Contains(metric, "completeness") || strings.Contains(metric, "coverage"):
		return IssueCompleteness
	case strings.Contains(metric, "format") || strings.Contains(metric, "boundary"):
		return IssueValidation
	default:
		return IssueQuality
	}
}
