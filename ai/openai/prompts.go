package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/docflow/ai"
)

const extractionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "text": {"type": "string"},
    "pages": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "number": {"type": "integer", "minimum": 1},
          "char_count": {"type": "integer", "minimum": 0}
        },
        "required": ["number", "char_count"],
        "additionalProperties": false
      }
    },
    "images": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "page": {"type": "integer", "minimum": 0},
          "caption": {"type": "string"},
          "ocr_text": {"type": "string"},
          "format": {"type": "string"},
          "width": {"type": "integer", "minimum": 0},
          "height": {"type": "integer", "minimum": 0}
        },
        "required": ["page", "caption", "format"],
        "additionalProperties": false
      }
    },
    "tables": {
      "type": "array",
      "items": {"type": "string"}
    }
  },
  "required": ["text", "pages", "images", "tables"],
  "additionalProperties": false
}`

const extractionPromptTemplate = `Convert the given raw document content (format: %s) into clean structured JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "text" is the full document text with markup, boilerplate, and navigation chrome removed. Preserve
  paragraph breaks and heading lines.
- Split pages on explicit page markers (form feeds, "Page N" headers). A document without markers is one page.
- Report every image reference you find. Use the surrounding caption or alt text for "caption"; leave
  "ocr_text" empty unless the source already contains recognized text for the image. Format must be one of: %s.
- Flatten each table to tab-separated text, one row per line, and put it in "tables".
- Do not invent content that is not in the source.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

const productResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "products": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "attributes": {
            "type": "object",
            "additionalProperties": {"type": "string"}
          },
          "confidence": {"type": "number", "minimum": 0, "maximum": 1}
        },
        "required": ["name", "confidence"],
        "additionalProperties": false
      }
    }
  },
  "required": ["products"],
  "additionalProperties": false
}`

const productPromptTemplate = `Identify the products described in the given document text and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- A product is a distinct purchasable item or model the document is about, not a passing mention.
- "name" is the product name as written in the document, trimmed.
- "attributes" holds key/value properties stated in the text, lowercase snake_case keys
  (e.g. "sku", "brand", "color", "weight"). Omit attributes that are not stated.
- "confidence" is from 0.0 (guess) to 1.0 (explicitly described). Rate based on how clearly the
  document identifies the product.
- If no products can be identified, return "products": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "The Aurora X2 desk lamp (SKU AX2-100) ships in matte black and weighs 1.2 kg."
Output:
{
  "products": [
    {
      "name": "Aurora X2",
      "attributes": {"sku": "AX2-100", "color": "matte black", "weight": "1.2 kg"},
      "confidence": 0.95
    }
  ]
}`

// buildExtractionPrompt creates the document extraction system prompt.
func buildExtractionPrompt(format string) string {
	return fmt.Sprintf(extractionPromptTemplate,
		format,
		extractionResponseSchema,
		strings.Join(ai.ImageFormats, ", "))
}

// buildProductPrompt creates the product extraction system prompt.
func buildProductPrompt() string {
	return fmt.Sprintf(productPromptTemplate, productResponseSchema)
}
