// Package pipeline provides job orchestration for document processing.
//
// The Registry type is the single source of truth for job and stage state:
// every stage transition is validated, serialized per job, and persisted
// before execution continues, with checkpoints enabling crash-safe
// resumption.
//
// The Orchestrator type drives jobs through their stage sequences
// (extract, chunk, embed, enrich, link, assess) on a bounded worker pool.
// Within a stage, batch work fans out on a second pool and fully joins
// before the stage completes. Collaborator calls carry per-call timeouts
// and retry with exponential backoff.
package pipeline
