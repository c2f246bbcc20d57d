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

import "github.com/poiesic/docflow/core"

// Config holds thresholds for quality assessment.
type Config struct {
	// MetricThreshold is the default per-metric threshold. A metric scoring
	// below it produces an Issue.
	MetricThreshold float64

	// MetricThresholds overrides the default threshold for specific metrics,
	// keyed by metric name.
	MetricThresholds map[string]float64

	// PrimaryThresholds holds the per-entity-type overall score threshold.
	// An assessment with an overall score below its entity's primary
	// threshold needs human review even when every metric passes.
	PrimaryThresholds map[core.EntityType]float64
}

// DefaultConfig returns a Config with the documented default thresholds.
func DefaultConfig() *Config {
	return &Config{
		MetricThreshold:  0.7,
		MetricThresholds: map[string]float64{},
		PrimaryThresholds: map[core.EntityType]float64{
			core.EntityProduct: 0.75,
			core.EntityChunk:   0.70,
			core.EntityImage:   0.65,
		},
	}
}

// Validate checks that all thresholds are in [0, 1].
func (c *Config) Validate() error {
	if c.MetricThreshold < 0 || c.MetricThreshold > 1 {
		return ErrInvalidThreshold
	}
	for _, threshold := range c.MetricThresholds {
		if threshold < 0 || threshold > 1 {
			return ErrInvalidThreshold
		}
	}
	for _, threshold := range c.PrimaryThresholds {
		if threshold < 0 || threshold > 1 {
			return ErrInvalidThreshold
		}
	}
	return nil
}

// thresholdFor returns the configured threshold for a metric.
func (c *Config) thresholdFor(metric string) float64 {
	if threshold, ok := c.MetricThresholds[metric]; ok {
		return threshold
	}
	return c.MetricThreshold
}

// primaryThresholdFor returns the overall score threshold for an entity type.
func (c *Config) primaryThresholdFor(entityType core.EntityType) float64 {
	if threshold, ok := c.PrimaryThresholds[entityType]; ok {
		return threshold
	}
	return c.MetricThreshold
}
