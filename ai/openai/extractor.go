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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/docflow/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// DocumentExtractor implements ai.DocumentExtractor using OpenAI-compatible
// chat APIs.
type DocumentExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// extractionPage matches the page structure expected from the LLM.
type extractionPage struct {
	Number    int `json:"number"`
	CharCount int `json:"char_count"`
}

// extractionImage matches the image structure expected from the LLM.
type extractionImage struct {
	Page    int    `json:"page"`
	Caption string `json:"caption"`
	OCRText string `json:"ocr_text"`
	Format  string `json:"format"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// extraction is the wrapper structure for the LLM's JSON response.
type extraction struct {
	Text   string            `json:"text"`
	Pages  []extractionPage  `json:"pages"`
	Images []extractionImage `json:"images"`
	Tables []string          `json:"tables"`
}

// newDocumentExtractor is an internal constructor that returns the concrete
// type. Used by Provider to manage the instance.
func newDocumentExtractor(config *ai.Config) (*DocumentExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ExtractorHost),
		openai.WithToken("none"),
		openai.WithModel(config.ExtractorModel),
	)
	if err != nil {
		return nil, err
	}

	return &DocumentExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewDocumentExtractor creates a new document extractor using the provided
// configuration.
//
// Returns ai.DocumentExtractor interface to enforce abstraction.
func NewDocumentExtractor(config *ai.Config) (ai.DocumentExtractor, error) {
	return newDocumentExtractor(config)
}

// ExtractDocument converts raw document content into structured form using
// an LLM. The format hint is embedded in the prompt so the model knows what
// markup to strip.
func (e *DocumentExtractor) ExtractDocument(ctx context.Context, contents, format string) (*ai.ExtractionResult, error) {
	var result extraction
	if err := generateJSON(ctx, e.client, e.logger, buildExtractionPrompt(format), contents, &result); err != nil {
		return nil, err
	}

	out := &ai.ExtractionResult{
		Text:   strings.TrimSpace(result.Text),
		Tables: result.Tables,
	}
	for _, p := range result.Pages {
		out.Pages = append(out.Pages, ai.PageMetadata{
			Number:    p.Number,
			CharCount: p.CharCount,
		})
	}
	for _, img := range result.Images {
		out.Images = append(out.Images, ai.ExtractedImage{
			Page:    img.Page,
			Caption: strings.TrimSpace(img.Caption),
			OCRText: strings.TrimSpace(img.OCRText),
			Format:  strings.ToLower(strings.TrimSpace(img.Format)),
			Width:   img.Width,
			Height:  img.Height,
		})
	}

	e.logger.Debug("extracted document",
		"pages", len(out.Pages),
		"images", len(out.Images),
		"tables", len(out.Tables),
		"chars", len(out.Text))
	return out, nil
}

// generateJSON runs one chat completion in JSON mode and unmarshals the
// response into target, retrying up to 3 times on malformed JSON.
func generateJSON(ctx context.Context, client llms.Model, logger *slog.Logger, systemPrompt, userText string, target any) error {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userText),
			},
		},
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return err
		}

		if len(response.Choices) < 1 {
			logger.Debug("no choices returned from model")
			return ErrEmptyResponse
		}

		responseText := repairJSON(response.Choices[0].Content)
		if err := json.Unmarshal([]byte(responseText), target); err != nil {
			lastErr = err
			logger.Warn("error parsing model response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		return nil
	}

	logger.Error("failed to parse model response after retries", "err", lastErr)
	return lastErr
}
