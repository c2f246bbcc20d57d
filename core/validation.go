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


package core

import "fmt"

// ValidateDocumentRef validates a document reference.
//
// Validation rules:
//   - Workspace must not be empty
//   - URI must not be empty
func ValidateDocumentRef(ref DocumentRef) error {
	if ref.Workspace == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyWorkspace)
	}
	if ref.URI == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyDocument)
	}
	return nil
}

// ValidateJob validates a job according to domain rules.
//
// Validation rules:
//   - Document reference must be valid
//   - Stage list must not be empty
//   - Stage names must be unique within the job
//
// NOT validated (populated by the orchestrator):
//   - Status, Cursor, timestamps
func ValidateJob(job *Job) error {
	if job == nil {
		return fmt.Errorf("%w: job is nil", ErrValidation)
	}
	if err := ValidateDocumentRef(job.Document); err != nil {
		return err
	}
	if len(job.Stages) == 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNoStages)
	}
	seen := make(map[string]bool, len(job.Stages))
	for i := range job.Stages {
		name := job.Stages[i].Name
		if name == "" {
			return fmt.Errorf("%w: stage %d has no name", ErrValidation, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: %w: %q", ErrValidation, ErrDuplicateStage, name)
		}
		seen[name] = true
	}
	return nil
}

// ValidateChunk validates a chunk according to domain rules.
//
// Validation rules:
//   - Contents must not be empty
//   - Index and Depth must not be negative
//
// NOT validated (populated by processors):
//   - Vector (can be empty until the embed stage runs)
//   - Metrics (can be empty until the assess stage runs)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrValidation)
	}
	if chunk.Contents == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyContents)
	}
	if chunk.Index < 0 {
		return fmt.Errorf("%w: chunk index cannot be negative", ErrValidation)
	}
	if chunk.Depth < 0 {
		return fmt.Errorf("%w: chunk depth cannot be negative", ErrValidation)
	}
	return nil
}

// ValidateTransition validates a stage status change, returning
// ErrInvalidTransition when the target status is unreachable.
func ValidateTransition(stage string, from, to StageStatus) error {
	if !CanTransitionStage(from, to) {
		return fmt.Errorf("%w: stage %q cannot move from %s to %s",
			ErrInvalidTransition, stage, from, to)
	}
	return nil
}
