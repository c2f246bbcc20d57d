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


package pipeline

import "errors"

var (
	// ErrJobRepositoryRequired is returned when a job repository is not provided.
	ErrJobRepositoryRequired = errors.New("job repository required")

	// ErrCheckpointRepositoryRequired is returned when a checkpoint repository is not provided.
	ErrCheckpointRepositoryRequired = errors.New("checkpoint repository required")

	// ErrRegistryRequired is returned when a job registry is not provided.
	ErrRegistryRequired = errors.New("job registry required")

	// ErrStoresRequired is returned when the store bundle is incomplete.
	ErrStoresRequired = errors.New("all stores required")

	// ErrProviderRequired is returned when an AI provider is not provided.
	ErrProviderRequired = errors.New("AI provider required")

	// ErrSourceRequired is returned when a document source is not provided.
	ErrSourceRequired = errors.New("document source required")

	// ErrAssessorRequired is returned when a quality assessor is not provided.
	ErrAssessorRequired = errors.New("quality assessor required")

	// ErrDispatcherRequired is returned when a review dispatcher is not provided.
	ErrDispatcherRequired = errors.New("review dispatcher required")

	// ErrBuilderRequired is returned when a relationship builder is not provided.
	ErrBuilderRequired = errors.New("relationship builder required")

	// ErrUnknownStage is returned when a job names a stage with no handler.
	ErrUnknownStage = errors.New("unknown stage")

	// ErrInvalidMaxAttempts is returned when a retry budget is not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrInvalidConfig is returned when a Config value is out of range.
	ErrInvalidConfig = errors.New("invalid pipeline configuration")

	// ErrBatchFailures is returned when a stage's batched sub-work failed
	// beyond the configured tolerance.
	ErrBatchFailures = errors.New("batch failures exceeded tolerance")
)
