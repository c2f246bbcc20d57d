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


package api

import (
	"log/slog"
	"net/http"

	"github.com/poiesic/docflow/pipeline"
	"github.com/poiesic/docflow/quality"
)

// Server exposes the pipeline over HTTP. Construct with NewServer and mount
// anywhere an http.Handler fits.
type Server struct {
	orchestrator *pipeline.Orchestrator
	registry     *pipeline.Registry
	stores       *pipeline.Stores
	assessor     *quality.Assessor
	dispatcher   *quality.Dispatcher
	logger       *slog.Logger
	mux          *http.ServeMux
}

var _ http.Handler = (*Server)(nil)

// ServerOption is a functional option for configuring a Server.
type ServerOption func(*Server)

// WithServerLogger sets the logger used by the server.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates an HTTP server over the given pipeline components.
func NewServer(orchestrator *pipeline.Orchestrator, registry *pipeline.Registry, stores *pipeline.Stores, assessor *quality.Assessor, dispatcher *quality.Dispatcher, opts ...ServerOption) (*Server, error) {
	if orchestrator == nil {
		return nil, pipeline.ErrRegistryRequired
	}
	if registry == nil {
		return nil, pipeline.ErrRegistryRequired
	}
	if stores == nil {
		return nil, pipeline.ErrStoresRequired
	}
	if assessor == nil {
		return nil, pipeline.ErrAssessorRequired
	}
	if dispatcher == nil {
		return nil, pipeline.ErrDispatcherRequired
	}

	server := &Server{
		orchestrator: orchestrator,
		registry:     registry,
		stores:       stores,
		assessor:     assessor,
		dispatcher:   dispatcher,
		logger:       slog.Default().With("component", "api"),
	}
	for _, opt := range opts {
		opt(server)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/jobs", server.handleSubmit)
	mux.HandleFunc("GET /api/jobs/{id}", server.handleJobStatus)
	mux.HandleFunc("GET /api/jobs/{id}/progress", server.handleJobProgress)
	mux.HandleFunc("POST /api/jobs/{id}/cancel", server.handleCancelJob)
	mux.HandleFunc("POST /api/quality/assess", server.handleAssess)
	mux.HandleFunc("GET /api/reviews", server.handleListReviews)
	mux.HandleFunc("POST /api/reviews/{id}/complete", server.handleCompleteReview)
	server.mux = mux

	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
