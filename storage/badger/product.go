package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

// ProductRepository implements storage.ProductRepository for BadgerDB.
type ProductRepository struct {
	backend *Backend
}

var _ storage.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(backend *Backend) *ProductRepository {
	return &ProductRepository{backend: backend}
}

// Close is a no-op; the repository holds no sequence.
func (r *ProductRepository) Close() error {
	return nil
}

// productContentID derives a deterministic product ID from its document and name.
func productContentID(product *core.Product) core.ID {
	return core.IDFromContent(fmt.Sprintf("%d/%s", product.DocumentId, product.Name))
}

// AddProducts persists products, deriving content-based IDs when unset.
func (r *ProductRepository) AddProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, product := range products {
			if product.Id == 0 {
				product.Id = productContentID(product)
			}
			product.InsertedAt = time.Now().UTC()
			product.UpdatedAt = product.InsertedAt

			if err := tx.Set(makeProductKey(product.Id), storage.MarshalProduct(product)); err != nil {
				return err
			}
			docKey := makeProductDocKey(product.DocumentId, product.Id)
			if err := tx.Set(docKey, storage.MarshalID(product.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return products, err
}

// UpdateProducts persists changes to existing products.
func (r *ProductRepository) UpdateProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, product := range products {
			key := makeProductKey(product.Id)
			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return storage.ErrNotFound
				}
				return err
			}

			product.UpdatedAt = time.Now().UTC()
			if err := tx.Set(key, storage.MarshalProduct(product)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return products, err
}

// GetProduct retrieves a single product by ID.
func (r *ProductRepository) GetProduct(ctx context.Context, id core.ID) (*core.Product, error) {
	var result *core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProductKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalProduct(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// DeleteProductsByDocument removes all products and index entries for a document.
func (r *ProductRepository) DeleteProductsByDocument(ctx context.Context, documentID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = partialCompositeKey(productDocPrefix, uint64(documentID))
		iter := tx.NewIterator(opts)

		type pair struct{ indexKey, productKey []byte }
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
				indexKey:   iter.Item().KeyCopy(nil),
				productKey: makeProductKey(id),
			})
		}
		// The iterator must be closed before the transaction commits
		iter.Close()

		for _, d := range doomed {
			if err := tx.Delete(d.productKey); err != nil {
				return err
			}
			if err := tx.Delete(d.indexKey); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProductsByDocument retrieves all products enriched from a document.
func (r *ProductRepository) GetProductsByDocument(ctx context.Context, documentID core.ID) ([]*core.Product, error) {
	var products []*core.Product

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = partialCompositeKey(productDocPrefix, uint64(documentID))
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

			item, err := tx.Get(makeProductKey(id))
			if err != nil {
				if err == badger.ErrKeyNotFound {
					continue
				}
				return err
			}
			var product *core.Product
			err = item.Value(func(val []byte) error {
				var unmarshalErr error
				product, unmarshalErr = storage.UnmarshalProduct(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			products = append(products, product)
		}
		return nil
	}, false)

	return products, err
}
