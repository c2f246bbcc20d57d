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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/pipeline"
)

// FileSource resolves document URIs against a base directory on the local
// filesystem.
type FileSource struct {
	baseDir string
}

var _ pipeline.DocumentSource = (*FileSource)(nil)

// NewFileSource creates a source rooted at baseDir.
func NewFileSource(baseDir string) *FileSource {
	return &FileSource{baseDir: baseDir}
}

// Fetch reads the referenced file. URIs escaping the base directory fail
// with a validation error.
func (s *FileSource) Fetch(_ context.Context, ref core.DocumentRef) (string, string, error) {
	path := filepath.Join(s.baseDir, filepath.FromSlash(ref.URI))
	rel, err := filepath.Rel(s.baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: URI %q escapes the source directory", core.ErrValidation, ref.URI)
	}

	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", "", fmt.Errorf("%w: document %q", core.ErrNotFound, ref.URI)
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(contents), formatForURI(ref), nil
}

// formatForURI derives the extraction format hint from the content type or
// file extension.
func formatForURI(ref core.DocumentRef) string {
	switch ref.ContentType {
	case "text/markdown":
		return "markdown"
	case "text/html":
		return "html"
	case "text/plain":
		return "text"
	}

	switch strings.ToLower(filepath.Ext(ref.URI)) {
	case ".md", ".markdown":
		return "markdown"
	case ".html", ".htm":
		return "html"
	default:
		return "text"
	}
}
