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

import "errors"

// Error taxonomy for the pipeline subsystem. Callers match with errors.Is.
var (
	// ErrValidation indicates malformed or out-of-range input.
	// Never retried; surfaced immediately at the boundary.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates an unknown job or entity.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition indicates an illegal stage state change.
	ErrInvalidTransition = errors.New("invalid stage transition")

	// ErrCollaborator indicates an external collaborator call failed.
	// Retried per policy before becoming a terminal stage failure.
	ErrCollaborator = errors.New("collaborator call failed")

	// ErrCheckpointCorrupt indicates resume found an inconsistent cursor.
	// Fatal for the job; requires manual intervention.
	ErrCheckpointCorrupt = errors.New("checkpoint corrupt")
)

// Domain validation errors
var (
	// ErrNoStages indicates a job was created with an empty stage list.
	ErrNoStages = errors.New("job requires at least one stage")

	// ErrEmptyDocument indicates a document reference without a URI.
	ErrEmptyDocument = errors.New("document URI cannot be empty")

	// ErrEmptyWorkspace indicates a document reference without a workspace.
	ErrEmptyWorkspace = errors.New("workspace cannot be empty")

	// ErrDuplicateStage indicates two stages in one job share a name.
	ErrDuplicateStage = errors.New("duplicate stage name")

	// ErrEmptyContents indicates a chunk with no text.
	ErrEmptyContents = errors.New("chunk contents cannot be empty")
)
