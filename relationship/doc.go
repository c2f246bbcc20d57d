// Package relationship builds the typed edge graph over a document's
// chunks and images.
//
// Three chunk edge kinds are produced after chunking: sequential edges in
// reading order, semantic edges between a sampled subset of lexically
// similar chunks, and hierarchical edges between adjacent heading depths.
// Images are linked to chunks by embedding similarity, with a threshold
// and cap so the comparison stays bounded. All tuning lives in Config.
package relationship
