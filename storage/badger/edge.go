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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

// EdgeRepository implements storage.EdgeRepository for BadgerDB.
// The edge key embeds (source, target, type), which makes that
// combination naturally unique: re-adding overwrites.
type EdgeRepository struct {
	backend *Backend
}

var _ storage.EdgeRepository = (*EdgeRepository)(nil)

// NewEdgeRepository creates a new EdgeRepository.
func NewEdgeRepository(backend *Backend) *EdgeRepository {
	return &EdgeRepository{backend: backend}
}

// Close is a no-op; the repository holds no sequence.
func (r *EdgeRepository) Close() error {
	return nil
}

// AddEdges persists edges, overwriting any existing (source, target, type).
func (r *EdgeRepository) AddEdges(ctx context.Context, edges ...*core.RelationshipEdge) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, edge := range edges {
			if edge.CreatedAt.IsZero() {
				edge.CreatedAt = time.Now().UTC()
			}
			key := makeEdgeKey(edge.SourceId, edge.TargetId, edge.Type)
			if err := tx.Set(key, storage.MarshalEdge(edge)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEdgesBySource retrieves all edges originating from an entity.
func (r *EdgeRepository) GetEdgesBySource(ctx context.Context, sourceID core.ID) ([]*core.RelationshipEdge, error) {
	var edges []*core.RelationshipEdge

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeEdgeSourcePrefix(sourceID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var edge *core.RelationshipEdge
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				edge, unmarshalErr = storage.UnmarshalEdge(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			edges = append(edges, edge)
		}
		return nil
	}, false)

	return edges, err
}

// DeleteEdgesBySource removes all edges originating from an entity.
func (r *EdgeRepository) DeleteEdgesBySource(ctx context.Context, sourceID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeEdgeSourcePrefix(sourceID)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var doomed [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			doomed = append(doomed, iter.Item().KeyCopy(nil))
		}
		// The iterator must be closed before the transaction commits
		iter.Close()

		for _, key := range doomed {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ReplaceEdgesForSource removes every edge originating from sourceID and
// inserts the given set. Delete and insert run in separate transactions;
// a concurrent reader may observe a transient empty edge set between them.
func (r *EdgeRepository) ReplaceEdgesForSource(ctx context.Context, sourceID core.ID, edges []*core.RelationshipEdge) error {
	if err := r.DeleteEdgesBySource(ctx, sourceID); err != nil {
		return err
	}
	if len(edges) == 0 {
		return nil
	}
	return r.AddEdges(ctx, edges...)
}
