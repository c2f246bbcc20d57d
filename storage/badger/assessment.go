package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

// AssessmentRepository implements storage.AssessmentRepository for BadgerDB.
type AssessmentRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.AssessmentRepository = (*AssessmentRepository)(nil)

// NewAssessmentRepository creates a new AssessmentRepository.
func NewAssessmentRepository(backend *Backend) (*AssessmentRepository, error) {
	idSeq, err := backend.GetSequence(assessmentIDSeq)
	if err != nil {
		return nil, err
	}

	return &AssessmentRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *AssessmentRepository) Close() error {
	return r.idSeq.Release()
}

// AddAssessment persists an assessment, generating its ID from sequence.
func (r *AssessmentRepository) AddAssessment(ctx context.Context, assessment *core.QualityAssessment) (*core.QualityAssessment, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if assessment.Id == 0 {
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			assessment.Id = core.ID(nextID)
		}

		if assessment.AssessedAt.IsZero() {
			assessment.AssessedAt = time.Now().UTC()
		}

		key := makeAssessmentKey(assessment.Id)
		if err := tx.Set(key, storage.MarshalAssessment(assessment)); err != nil {
			return err
		}

		entityKey := makeAssessmentEntityKey(assessment.EntityId, assessment.Id)
		if err := tx.Set(entityKey, storage.MarshalID(assessment.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return assessment, err
}

// GetAssessment retrieves a single assessment by ID.
func (r *AssessmentRepository) GetAssessment(ctx context.Context, id core.ID) (*core.QualityAssessment, error) {
	var result *core.QualityAssessment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAssessmentKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalAssessment(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// ListAssessmentsByEntity retrieves all assessments for an entity,
// most recent first.
func (r *AssessmentRepository) ListAssessmentsByEntity(ctx context.Context, entityID core.ID) ([]*core.QualityAssessment, error) {
	var assessments []*core.QualityAssessment

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = partialCompositeKey(assessmentEntPfx, uint64(entityID))
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

			item, err := tx.Get(makeAssessmentKey(id))
			if err != nil {
				if err == badger.ErrKeyNotFound {
					continue
				}
				return err
			}
			var assessment *core.QualityAssessment
			err = item.Value(func(val []byte) error {
				var unmarshalErr error
				assessment, unmarshalErr = storage.UnmarshalAssessment(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			assessments = append(assessments, assessment)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	slices.SortFunc(assessments, func(a, b *core.QualityAssessment) int {
		return b.AssessedAt.Compare(a.AssessedAt)
	})
	return assessments, nil
}
