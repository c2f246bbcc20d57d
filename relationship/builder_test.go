package relationship

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/docflow/core"
	badgerstore "github.com/poiesic/docflow/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T) (*Builder, *badgerstore.Repositories) {
	t.Helper()

	repos, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	builder, err := NewBuilder(repos.Edges, nil)
	require.NoError(t, err)
	return builder, repos
}

// makeChunks builds n chunks in reading order with distinct contents.
func makeChunks(n int) []*core.Chunk {
	chunks := make([]*core.Chunk, n)
	for i := 0; i < n; i++ {
		chunks[i] = &core.Chunk{
			Id:       core.ID(i + 1),
			Index:    i,
			Contents: fmt.Sprintf("section %04d entirely distinct wording number%04d", i, i),
		}
	}
	return chunks
}

func TestNewBuilder(t *testing.T) {
	t.Run("requires repository", func(t *testing.T) {
		_, err := NewBuilder(nil, nil)
		assert.ErrorIs(t, err, ErrEdgeRepositoryRequired)
	})

	t.Run("rejects bad config", func(t *testing.T) {
		repos, err := badgerstore.NewMemoryRepositories()
		require.NoError(t, err)
		t.Cleanup(func() { repos.Close() })

		config := DefaultConfig()
		config.SemanticSampleSize = 0
		_, err = NewBuilder(repos.Edges, config)
		assert.ErrorIs(t, err, ErrInvalidSampleSize)
	})
}

func TestBuildChunkEdges_SequentialCount(t *testing.T) {
	builder, _ := newTestBuilder(t)

	for _, n := range []int{2, 5, 20} {
		chunks := makeChunks(n)

		edges, err := builder.BuildChunkEdges(context.Background(), chunks)
		require.NoError(t, err)

		sequential := 0
		for _, edge := range edges {
			if edge.Type == core.EdgeSequential {
				sequential++
			}
		}
		assert.Equal(t, n-1, sequential, "n=%d", n)
	}
}

func TestBuildChunkEdges_SequentialOrder(t *testing.T) {
	builder, _ := newTestBuilder(t)
	chunks := makeChunks(4)

	edges, err := builder.BuildChunkEdges(context.Background(), chunks)
	require.NoError(t, err)

	var sequential []*core.RelationshipEdge
	for _, edge := range edges {
		if edge.Type == core.EdgeSequential {
			sequential = append(sequential, edge)
		}
	}
	require.Len(t, sequential, 3)
	for i, edge := range sequential {
		assert.Equal(t, chunks[i].Id, edge.SourceId)
		assert.Equal(t, chunks[i+1].Id, edge.TargetId)
		assert.Equal(t, 0.95, edge.Confidence)
		assert.False(t, edge.Bidirectional)
	}
}

func TestBuildChunkEdges_SingleChunkNoEdges(t *testing.T) {
	builder, _ := newTestBuilder(t)

	edges, err := builder.BuildChunkEdges(context.Background(), makeChunks(1))
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestBuildChunkEdges_SemanticAboveThreshold(t *testing.T) {
	builder, _ := newTestBuilder(t)

	chunks := []*core.Chunk{
		{Id: 1, Index: 0, Contents: "compressor unit installation guide overview"},
		{Id: 2, Index: 1, Contents: "compressor unit installation guide appendix"},
		{Id: 3, Index: 2, Contents: "warranty statement legal jurisdiction clauses"},
	}

	edges, err := builder.BuildChunkEdges(context.Background(), chunks)
	require.NoError(t, err)

	var semantic []*core.RelationshipEdge
	for _, edge := range edges {
		if edge.Type == core.EdgeSemantic {
			semantic = append(semantic, edge)
		}
	}
	require.Len(t, semantic, 1)
	assert.Equal(t, core.ID(1), semantic[0].SourceId)
	assert.Equal(t, core.ID(2), semantic[0].TargetId)
	assert.True(t, semantic[0].Bidirectional)
	assert.Greater(t, semantic[0].Confidence, 0.6)
}

func TestBuildChunkEdges_HierarchicalAdjacentDepths(t *testing.T) {
	builder, _ := newTestBuilder(t)

	chunks := []*core.Chunk{
		{Id: 1, Index: 0, Depth: 1, Contents: "chapter one heading material"},
		{Id: 2, Index: 1, Depth: 2, Contents: "first nested subsection paragraph"},
		{Id: 3, Index: 2, Depth: 2, Contents: "second nested subsection paragraph"},
		{Id: 4, Index: 3, Depth: 1, Contents: "chapter two heading material"},
		{Id: 5, Index: 4, Depth: 2, Contents: "third nested subsection paragraph"},
	}

	edges, err := builder.BuildChunkEdges(context.Background(), chunks)
	require.NoError(t, err)

	hierarchical := map[core.ID]core.ID{}
	for _, edge := range edges {
		if edge.Type == core.EdgeHierarchical {
			hierarchical[edge.SourceId] = edge.TargetId
			assert.Equal(t, 0.85, edge.Confidence)
		}
	}

	// Each parent links to the first later-occurring child at the next depth.
	assert.Equal(t, map[core.ID]core.ID{1: 2, 4: 5}, hierarchical)
}

func TestLinkImage(t *testing.T) {
	t.Run("threshold and labels", func(t *testing.T) {
		builder, _ := newTestBuilder(t)

		image := &core.Image{Id: 100, Vector: []float32{1, 0}}
		chunks := []*core.Chunk{
			{Id: 1, Vector: []float32{1, 0}},        // similarity 1.0 -> primary
			{Id: 2, Vector: []float32{0.8, 0.6}},    // 0.8 -> related
			{Id: 3, Vector: []float32{0, 1}},        // 0.0 -> dropped
			{Id: 4, Vector: nil},                    // missing -> dropped
			{Id: 5, Vector: []float32{0.1, 0.2, 3}}, // dimension mismatch -> dropped
		}

		edges, err := builder.LinkImage(context.Background(), image, chunks)
		require.NoError(t, err)
		require.Len(t, edges, 2)

		assert.Equal(t, core.ID(1), edges[0].TargetId)
		assert.Equal(t, LabelPrimary, edges[0].Label)
		assert.Equal(t, core.ID(2), edges[1].TargetId)
		assert.Equal(t, LabelRelated, edges[1].Label)
	})

	t.Run("all candidates missing embeddings yields zero edges", func(t *testing.T) {
		builder, _ := newTestBuilder(t)

		image := &core.Image{Id: 100, Vector: []float32{1, 0}}
		chunks := []*core.Chunk{{Id: 1}, {Id: 2}}

		edges, err := builder.LinkImage(context.Background(), image, chunks)
		require.NoError(t, err)
		assert.Empty(t, edges)
	})

	t.Run("cap limits edge count", func(t *testing.T) {
		repos, err := badgerstore.NewMemoryRepositories()
		require.NoError(t, err)
		t.Cleanup(func() { repos.Close() })

		config := DefaultConfig()
		config.ImageLinkCap = 3
		builder, err := NewBuilder(repos.Edges, config)
		require.NoError(t, err)

		image := &core.Image{Id: 100, Vector: []float32{1, 0}}
		var chunks []*core.Chunk
		for i := 1; i <= 10; i++ {
			chunks = append(chunks, &core.Chunk{Id: core.ID(i), Vector: []float32{1, 0}})
		}

		edges, err := builder.LinkImage(context.Background(), image, chunks)
		require.NoError(t, err)
		assert.Len(t, edges, 3)
	})

	t.Run("relinking replaces the prior edge set", func(t *testing.T) {
		builder, repos := newTestBuilder(t)

		image := &core.Image{Id: 100, Vector: []float32{1, 0}}
		first := []*core.Chunk{
			{Id: 1, Vector: []float32{1, 0}},
			{Id: 2, Vector: []float32{1, 0}},
		}

		_, err := builder.LinkImage(context.Background(), image, first)
		require.NoError(t, err)

		second := []*core.Chunk{{Id: 3, Vector: []float32{1, 0}}}
		_, err = builder.LinkImage(context.Background(), image, second)
		require.NoError(t, err)

		stored, err := repos.Edges.GetEdgesBySource(context.Background(), image.Id)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, core.ID(3), stored[0].TargetId)
	})
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	config := DefaultConfig()
	config.ImageLinkCap = 0
	assert.ErrorIs(t, config.Validate(), ErrInvalidLinkCap)

	config = DefaultConfig()
	config.SemanticThreshold = 1.2
	assert.ErrorIs(t, config.Validate(), ErrInvalidThreshold)
}
