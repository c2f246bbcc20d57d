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


// Package storage provides the storage abstraction layer for docflow.
//
// This package defines repository interfaces that decouple storage
// implementation from pipeline logic. It allows different storage backends
// (BadgerDB, in-memory, etc.) to be used interchangeably, and keeps the
// orchestrator independently testable: the job registry receives an injected
// store rather than owning a process-wide singleton.
//
// # Repositories
//
//   - JobRepository: pipeline jobs and their stage lists
//   - CheckpointRepository: per-job stage cursors for crash-safe resumption
//   - ChunkRepository / ImageRepository / ProductRepository: document artifacts
//   - AssessmentRepository: quality assessments
//   - ReviewTaskRepository: human-review tasks
//   - EdgeRepository: relationship edges, unique per (source, target, type)
//
// # Usage
//
// Create repositories over a badger backend:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	jobs, err := badger.NewJobRepository(backend)
//
// Use in tests with in-memory storage:
//
//	backend, _ := badger.OpenBackend("", true)
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines. Writes to a given job are serialized by
// the pipeline registry above this layer.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support.
package storage
