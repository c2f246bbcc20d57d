// Package quality computes composite quality scores for processed entities
// and escalates failing ones to human review.
//
// The Assessor scores an entity's metrics against a per-entity-type weight
// table, producing a QualityAssessment with issues for every metric below
// its threshold. The Dispatcher turns assessments that need human review
// into prioritized ReviewTasks, at most one per assessment, and records
// reviewer decisions.
package quality
