package quality

import (
	"testing"

	"github.com/poiesic/docflow/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssessor(t *testing.T) *Assessor {
	t.Helper()
	assessor, err := NewAssessor(nil)
	require.NoError(t, err)
	return assessor
}

func TestAssess_PerfectProduct(t *testing.T) {
	assessor := newTestAssessor(t)

	metrics := map[string]float64{
		"quality":              1.0,
		"confidence":           1.0,
		"completeness":         1.0,
		"embedding_coverage":   1.0,
		"embedding_confidence": 1.0,
	}

	assessment, err := assessor.Assess(42, core.EntityProduct, metrics)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, assessment.OverallScore, 1e-9)
	assert.True(t, assessment.PassesThresholds)
	assert.False(t, assessment.NeedsHumanReview)
	assert.Empty(t, assessment.Issues)
	assert.Empty(t, assessment.Recommendations)
}

func TestAssess_WeightedScore(t *testing.T) {
	assessor := newTestAssessor(t)

	// chunk weights: coherence 0.30, quality 0.25, boundary 0.25, semantic 0.20
	metrics := map[string]float64{
		"coherence":             1.0,
		"quality":               0.8,
		"boundary_quality":      1.0,
		"semantic_completeness": 1.0,
	}

	assessment, err := assessor.Assess(7, core.EntityChunk, metrics)
	require.NoError(t, err)
	assert.InDelta(t, 0.95, assessment.OverallScore, 1e-9)
}

func TestAssess_ZeroMetricIsCritical(t *testing.T) {
	assessor := newTestAssessor(t)

	metrics := map[string]float64{
		"quality":              0.9,
		"confidence":           0.9,
		"completeness":         0.9,
		"embedding_coverage":   0.0,
		"embedding_confidence": 0.9,
	}

	assessment, err := assessor.Assess(42, core.EntityProduct, metrics)
	require.NoError(t, err)

	require.Len(t, assessment.Issues, 1)
	issue := assessment.Issues[0]
	assert.Equal(t, "embedding_coverage", issue.Metric)
	assert.Equal(t, core.SeverityCritical, issue.Severity)
	assert.Equal(t, IssueEmbedding, issue.Type)
	assert.True(t, issue.AutoFixable)
	assert.False(t, assessment.PassesThresholds)
	assert.True(t, assessment.NeedsHumanReview)
}

func TestAssess_MissingMetricTreatedAsZero(t *testing.T) {
	assessor := newTestAssessor(t)

	assessment, err := assessor.Assess(7, core.EntityChunk, map[string]float64{
		"coherence":        1.0,
		"quality":          1.0,
		"boundary_quality": 1.0,
		// semantic_completeness absent
	})
	require.NoError(t, err)

	require.Len(t, assessment.Issues, 1)
	assert.Equal(t, "semantic_completeness", assessment.Issues[0].Metric)
	assert.Equal(t, core.SeverityCritical, assessment.Issues[0].Severity)
}

func TestAssess_SeverityCalibration(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		threshold float64
		expected  core.Severity
	}{
		{"below half threshold", 0.30, 0.70, core.SeverityCritical},
		{"below absolute floor", 0.19, 0.30, core.SeverityCritical},
		{"large gap", 0.39, 0.70, core.SeverityHigh},
		{"medium gap", 0.50, 0.70, core.SeverityMedium},
		{"small gap", 0.65, 0.70, core.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, severityFor(tt.value, tt.threshold))
		})
	}
}

func TestAssess_LowOverallScoreNeedsReview(t *testing.T) {
	config := DefaultConfig()
	config.MetricThreshold = 0.5
	assessor, err := NewAssessor(config)
	require.NoError(t, err)

	// Every metric barely passes its threshold, but the weighted total
	// falls below the chunk primary threshold (0.70).
	metrics := map[string]float64{
		"coherence":             0.6,
		"quality":               0.6,
		"boundary_quality":      0.6,
		"semantic_completeness": 0.6,
	}

	assessment, err := assessor.Assess(7, core.EntityChunk, metrics)
	require.NoError(t, err)

	assert.Empty(t, assessment.Issues)
	assert.True(t, assessment.PassesThresholds)
	assert.True(t, assessment.NeedsHumanReview)
}

func TestAssess_UnknownEntityType(t *testing.T) {
	assessor := newTestAssessor(t)

	_, err := assessor.Assess(1, core.EntityType(99), map[string]float64{})
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}

func TestClassifyMetric(t *testing.T) {
	assert.Equal(t, IssueEmbedding, classifyMetric("embedding_coverage"))
	assert.Equal(t, IssueEmbedding, classifyMetric("embedding_confidence"))
	assert.Equal(t, IssueCompleteness, classifyMetric("semantic_completeness"))
	assert.Equal(t, IssueValidation, classifyMetric("format_validity"))
	assert.Equal(t, IssueValidation, classifyMetric("boundary_quality"))
	assert.Equal(t, IssueQuality, classifyMetric("coherence"))
}

func TestConfigValidate(t *testing.T) {
	config := DefaultConfig()
	assert.NoError(t, config.Validate())

	config.MetricThreshold = 1.5
	assert.ErrorIs(t, config.Validate(), ErrInvalidThreshold)

	config = DefaultConfig()
	config.MetricThresholds["quality"] = -0.1
	assert.ErrorIs(t, config.Validate(), ErrInvalidThreshold)
}
