package relationship

// Config holds the tuning knobs for relationship building. The sampling,
// threshold, and cap values bound the otherwise quadratic comparison work
// and are deliberately configuration rather than constants.
type Config struct {
	// SequentialConfidence is the fixed confidence for reading-order edges.
	SequentialConfidence float64

	// SemanticSampleSize bounds how many chunks participate in the semantic
	// comparison pass. The effective sample is min(n, SemanticSampleSize).
	SemanticSampleSize int

	// SemanticThreshold is the minimum lexical similarity for a semantic edge.
	SemanticThreshold float64

	// HierarchicalConfidence is the fixed confidence for parent-child edges.
	HierarchicalConfidence float64

	// ImageLinkThreshold is the minimum cosine similarity for an
	// image-to-chunk edge.
	ImageLinkThreshold float64

	// ImagePrimaryThreshold is the similarity above which an image edge is
	// labeled primary rather than related.
	ImagePrimaryThreshold float64

	// ImageLinkCap is the maximum number of edges kept per image.
	ImageLinkCap int
}

// DefaultConfig returns the documented default tuning.
func DefaultConfig() *Config {
	return &Config{
		SequentialConfidence:   0.95,
		SemanticSampleSize:     50,
		SemanticThreshold:      0.6,
		HierarchicalConfidence: 0.85,
		ImageLinkThreshold:     0.65,
		ImagePrimaryThreshold:  0.85,
		ImageLinkCap:           50,
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.SemanticSampleSize < 1 {
		return ErrInvalidSampleSize
	}
	if c.ImageLinkCap < 1 {
		return ErrInvalidLinkCap
	}
	for _, threshold := range []float64{
		c.SequentialConfidence, c.SemanticThreshold, c.HierarchicalConfidence,
		c.ImageLinkThreshold, c.ImagePrimaryThreshold,
	} {
		if threshold < 0 || threshold > 1 {
			return ErrInvalidThreshold
		}
	}
	return nil
}
