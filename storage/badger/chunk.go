package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
func NewChunkRepository(backend *Backend) *ChunkRepository {
	return &ChunkRepository{backend: backend}
}

// Close is a no-op; the repository holds no sequence.
func (r *ChunkRepository) Close() error {
	return nil
}

// chunkContentID derives a deterministic chunk ID from its document,
// position, and contents. Re-extracting the same document yields the
// same chunk IDs.
func chunkContentID(chunk *core.Chunk) core.ID {
	return core.IDFromContent(fmt.Sprintf("%d/%d/%s", chunk.DocumentId, chunk.Index, chunk.Contents))
}

// AddChunks persists chunks, deriving content-based IDs when unset.
func (r *ChunkRepository) AddChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			if chunk.Id == 0 {
				chunk.Id = chunkContentID(chunk)
			}
			chunk.InsertedAt = time.Now().UTC()
			chunk.UpdatedAt = chunk.InsertedAt

			if err := tx.Set(makeChunkKey(chunk.Id), storage.MarshalChunk(chunk)); err != nil {
				return err
			}

			docKey := makeChunkDocKey(chunk.DocumentId, chunk.Index)
			if err := tx.Set(docKey, storage.MarshalID(chunk.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return chunks, err
}

// UpdateChunks persists changes to existing chunks.
func (r *ChunkRepository) UpdateChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			key := makeChunkKey(chunk.Id)
			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return storage.ErrNotFound
				}
				return err
			}

			chunk.UpdatedAt = time.Now().UTC()
			if err := tx.Set(key, storage.MarshalChunk(chunk)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return chunks, err
}

// GetChunk retrieves a single chunk by ID.
func (r *ChunkRepository) GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error) {
	var result *core.Chunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChunkKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalChunk(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// GetChunksByDocument retrieves all chunks for a document in reading order.
// The document index key embeds the chunk index BigEndian, so a prefix scan
// yields chunks already ordered.
func (r *ChunkRepository) GetChunksByDocument(ctx context.Context, documentID core.ID) ([]*core.Chunk, error) {
	var chunks []*core.Chunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = partialCompositeKey(chunkDocPrefix, uint64(documentID))
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			item, err := tx.Get(makeChunkKey(id))
			if err != nil {
				if err == badger.ErrKeyNotFound {
					continue // index entry without record; skip
				}
				return err
			}
			var chunk *core.Chunk
			err = item.Value(func(val []byte) error {
				var unmarshalErr error
				chunk, unmarshalErr = storage.UnmarshalChunk(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			chunks = append(chunks, chunk)
		}
		return nil
	}, false)

	return chunks, err
}

// DeleteChunksByDocument removes all chunks and index entries for a document.
func (r *ChunkRepository) DeleteChunksByDocument(ctx context.Context, documentID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = partialCompositeKey(chunkDocPrefix, uint64(documentID))
		iter := tx.NewIterator(opts)

		type pair struct{ indexKey, chunkKey []byte }
		var doomed []pair

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				iter.Close()
				return err
			}
			doomed = append(doomed, pair{
				indexKey: iter.Item().KeyCopy(nil),
				chunkKey: makeChunkKey(id),
			})
		}
		// The iterator must be closed before the transaction commits
		iter.Close()

		for _, d := range doomed {
			if err := tx.Delete(d.chunkKey); err != nil {
				return err
			}
			if err := tx.Delete(d.indexKey); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}
