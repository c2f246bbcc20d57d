package badger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

// ImageRepository implements storage.ImageRepository for BadgerDB.
type ImageRepository struct {
	backend *Backend
}

var _ storage.ImageRepository = (*ImageRepository)(nil)

// NewImageRepository creates a new ImageRepository.
func NewImageRepository(backend *Backend) *ImageRepository {
	return &ImageRepository{backend: backend}
}

// Close is a no-op; the repository holds no sequence.
func (r *ImageRepository) Close() error {
	return nil
}

// imageContentID derives a deterministic image ID from its document, page,
// and caption.
func imageContentID(image *core.Image) core.ID {
	return core.IDFromContent(fmt.Sprintf("%d/p%d/%s", image.DocumentId, image.Page, image.Caption))
}

// AddImages persists images, deriving content-based IDs when unset.
func (r *ImageRepository) AddImages(ctx context.Context, images ...*core.Image) ([]*core.Image, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, image := range images {
			if image.Id == 0 {
				image.Id = imageContentID(image)
			}
			image.InsertedAt = time.Now().UTC()
			image.UpdatedAt = image.InsertedAt

			if err := tx.Set(makeImageKey(image.Id), storage.MarshalImage(image)); err != nil {
				return err
			}
			docKey := makeImageDocKey(image.DocumentId, image.Id)
			if err := tx.Set(docKey, storage.MarshalID(image.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return images, err
}

// UpdateImages persists changes to existing images.
func (r *ImageRepository) UpdateImages(ctx context.Context, images ...*core.Image) ([]*core.Image, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, image := range images {
			key := makeImageKey(image.Id)
			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return storage.ErrNotFound
				}
				return err
			}

			image.UpdatedAt = time.Now().UTC()
			if err := tx.Set(key, storage.MarshalImage(image)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return images, err
}

// GetImage retrieves a single image by ID.
func (r *ImageRepository) GetImage(ctx context.Context, id core.ID) (*core.Image, error) {
	var result *core.Image
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeImageKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalImage(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// GetImagesByDocument retrieves all images for a document in page order.
func (r *ImageRepository) GetImagesByDocument(ctx context.Context, documentID core.ID) ([]*core.Image, error) {
	var images []*core.Image

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = partialCompositeKey(imageDocPrefix, uint64(documentID))
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

			item, err := tx.Get(makeImageKey(id))
			if err != nil {
				if err == badger.ErrKeyNotFound {
					continue
				}
				return err
			}
			var image *core.Image
			err = item.Value(func(val []byte) error {
				var unmarshalErr error
				image, unmarshalErr = storage.UnmarshalImage(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			images = append(images, image)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	slices.SortFunc(images, func(a, b *core.Image) int {
		return a.Page - b.Page
	})
	return images, nil
}

// DeleteImagesByDocument removes all images and index entries for a document.
func (r *ImageRepository) DeleteImagesByDocument(ctx context.Context, documentID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = partialCompositeKey(imageDocPrefix, uint64(documentID))
		iter := tx.NewIterator(opts)

		type pair struct{ indexKey, imageKey []byte }
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
				imageKey: makeImageKey(id),
			})
		}
		// The iterator must be closed before the transaction commits
		iter.Close()

		for _, d := range doomed {
			if err := tx.Delete(d.imageKey); err != nil {
				return err
			}
			if err := tx.Delete(d.indexKey); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}
