package ai

// ExtractionResult is the structured output of document extraction.
type ExtractionResult struct {
	// Text is the cleaned full text of the document.
	Text string

	// Pages describes each page found during extraction, in order.
	Pages []PageMetadata

	// Images lists images found in the document with whatever textual
	// context the extractor could recover for them.
	Images []ExtractedImage

	// Tables holds tables flattened to text, one entry per table.
	Tables []string
}

// PageMetadata describes one page of an extracted document.
type PageMetadata struct {
	// Number is the 1-based page number.
	Number int

	// CharCount is the number of characters of text on the page.
	CharCount int
}

// ExtractedImage is an image reference recovered during extraction.
type ExtractedImage struct {
	// Page is the 1-based page the image appeared on, 0 if unknown.
	Page int

	// Caption is the image caption or alt text, if any.
	Caption string

	// OCRText is text recovered from the image itself, if any.
	OCRText string

	// Format is the lowercase image format, e.g. "png".
	// Must match one of the entries in ImageFormats when known.
	Format string

	// Width and Height are pixel dimensions, 0 if unknown.
	Width  int
	Height int
}

// ExtractedProduct is a product entity identified in document text.
type ExtractedProduct struct {
	// Name is the product name as it should be stored.
	Name string

	// Attributes holds extracted key/value properties, e.g. "sku", "brand".
	Attributes map[string]string

	// Confidence is the extractor's confidence in the identification,
	// from 0.0 to 1.0.
	Confidence float64
}

// ImageFormats defines the image formats extractors are expected to emit.
// Quality assessment treats any other format as an issue.
var ImageFormats = []string{
	"bmp",
	"gif",
	"jpeg",
	"png",
	"svg",
	"tiff",
	"webp",
}
