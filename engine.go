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


package docflow

import (
	"log/slog"

	"github.com/poiesic/docflow/ai"
	"github.com/poiesic/docflow/ai/openai"
	"github.com/poiesic/docflow/api"
	"github.com/poiesic/docflow/pipeline"
	"github.com/poiesic/docflow/quality"
	"github.com/poiesic/docflow/relationship"
	badgerstore "github.com/poiesic/docflow/storage/badger"
)

// Engine bundles the store, AI provider, and pipeline components behind one
// open/close lifecycle.
type Engine struct {
	repos    *badgerstore.Repositories
	provider ai.Provider
	registry *pipeline.Registry
	stores   *pipeline.Stores
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	inMemory bool
}

// WithAIConfig sets the configuration for the default OpenAI-compatible
// provider.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider injects a pre-built AI provider, bypassing the default
// OpenAI-compatible one. Useful for tests and offline runs.
func WithProvider(provider ai.Provider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithInMemoryStore keeps all state in memory, discarded on Close.
func WithInMemoryStore() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// NewEngine opens the store at filePath and wires the repositories and AI
// provider. Caller must Close when done.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badgerstore.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}
	repos, err := badgerstore.NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			repos.Close()
			return nil, err
		}
	}

	registry, err := pipeline.NewRegistry(repos.Jobs, repos.Checkpoints)
	if err != nil {
		provider.Close()
		repos.Close()
		return nil, err
	}

	return &Engine{
		repos:    repos,
		provider: provider,
		registry: registry,
		stores: &pipeline.Stores{
			Jobs:        repos.Jobs,
			Checkpoints: repos.Checkpoints,
			Chunks:      repos.Chunks,
			Images:      repos.Images,
			Products:    repos.Products,
			Assessments: repos.Assessments,
			Reviews:     repos.Reviews,
			Edges:       repos.Edges,
		},
		logger: slog.Default(),
	}, nil
}

// Close releases the AI provider and the store.
func (e *Engine) Close() error {
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}
	return e.repos.Close()
}

// Registry returns the job registry.
func (e *Engine) Registry() *pipeline.Registry {
	return e.registry
}

// Stores returns the repository bundle.
func (e *Engine) Stores() *pipeline.Stores {
	return e.stores
}

// NewOrchestrator builds an orchestrator over the engine's components,
// fetching documents through the given source. A nil config uses
// pipeline.DefaultConfig.
func (e *Engine) NewOrchestrator(source pipeline.DocumentSource, config *pipeline.Config, opts ...pipeline.OrchestratorOption) (*pipeline.Orchestrator, error) {
	assessor, err := quality.NewAssessor(nil)
	if err != nil {
		return nil, err
	}
	dispatcher, err := quality.NewDispatcher(e.repos.Reviews)
	if err != nil {
		return nil, err
	}
	builder, err := relationship.NewBuilder(e.repos.Edges, nil)
	if err != nil {
		return nil, err
	}
	return pipeline.NewOrchestrator(e.registry, e.stores, e.provider, source, assessor, dispatcher, builder, config, opts...)
}

// NewDispatcher builds a review dispatcher over the engine's task store.
func (e *Engine) NewDispatcher() (*quality.Dispatcher, error) {
	return quality.NewDispatcher(e.repos.Reviews)
}

// NewServer builds the HTTP surface over an orchestrator created from this
// engine.
func (e *Engine) NewServer(orchestrator *pipeline.Orchestrator) (*api.Server, error) {
	assessor, err := quality.NewAssessor(nil)
	if err != nil {
		return nil, err
	}
	dispatcher, err := quality.NewDispatcher(e.repos.Reviews)
	if err != nil {
		return nil, err
	}
	return api.NewServer(orchestrator, e.registry, e.stores, assessor, dispatcher)
}
