// Package similarity provides the scoring primitives used for relationship
// discovery and image-chunk linking: cosine similarity over embedding
// vectors and Jaccard similarity over token sets, plus vector
// normalization helpers.
package similarity
