package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

// ReviewTaskRepository implements storage.ReviewTaskRepository for BadgerDB.
type ReviewTaskRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ReviewTaskRepository = (*ReviewTaskRepository)(nil)

// NewReviewTaskRepository creates a new ReviewTaskRepository.
func NewReviewTaskRepository(backend *Backend) (*ReviewTaskRepository, error) {
	idSeq, err := backend.GetSequence(reviewIDSeq)
	if err != nil {
		return nil, err
	}

	return &ReviewTaskRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ReviewTaskRepository) Close() error {
	return r.idSeq.Release()
}

// AddTask persists a new task, generating its ID from sequence.
// The assessment index enforces at most one task per assessment:
// adding a second task for the same assessment returns ErrDuplicateKey.
func (r *ReviewTaskRepository) AddTask(ctx context.Context, task *core.ReviewTask) (*core.ReviewTask, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		assessKey := makeReviewAssessmentKey(task.AssessmentId)
		if _, err := tx.Get(assessKey); err == nil {
			return storage.ErrDuplicateKey
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		if task.Id == 0 {
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
			task.Id = core.ID(nextID)
		}

		if task.CreatedAt.IsZero() {
			task.CreatedAt = time.Now().UTC()
		}

		if err := tx.Set(makeReviewKey(task.Id), storage.MarshalReviewTask(task)); err != nil {
			return err
		}
		if err := tx.Set(assessKey, storage.MarshalID(task.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return task, err
}

// UpdateTask persists changes to an existing task.
func (r *ReviewTaskRepository) UpdateTask(ctx context.Context, task *core.ReviewTask) (*core.ReviewTask, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeReviewKey(task.Id)
		if _, err := tx.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		if err := tx.Set(key, storage.MarshalReviewTask(task)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return task, err
}

// GetTask retrieves a single task by ID.
func (r *ReviewTaskRepository) GetTask(ctx context.Context, id core.ID) (*core.ReviewTask, error) {
	var result *core.ReviewTask
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeReviewKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalReviewTask(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// GetTaskByAssessment retrieves the task created for an assessment.
// Returns nil, nil if no task references the assessment.
func (r *ReviewTaskRepository) GetTaskByAssessment(ctx context.Context, assessmentID core.ID) (*core.ReviewTask, error) {
	var result *core.ReviewTask
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeReviewAssessmentKey(assessmentID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		var taskID core.ID
		err = item.Value(func(val []byte) error {
			var err error
			taskID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		taskItem, err := tx.Get(makeReviewKey(taskID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return taskItem.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalReviewTask(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListTasks retrieves tasks matching the filter, oldest first.
func (r *ReviewTaskRepository) ListTasks(ctx context.Context, filter storage.ReviewTaskFilter) ([]*core.ReviewTask, error) {
	var tasks []*core.ReviewTask

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reviewPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var task *core.ReviewTask
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				task, unmarshalErr = storage.UnmarshalReviewTask(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}

			if filter.Status != 0 && task.Status != filter.Status {
				continue
			}
			if filter.Priority != 0 && task.Priority != filter.Priority {
				continue
			}
			if filter.EntityType != 0 && task.EntityType != filter.EntityType {
				continue
			}
			tasks = append(tasks, task)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	slices.SortFunc(tasks, func(a, b *core.ReviewTask) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	if filter.Limit > 0 && len(tasks) > filter.Limit {
		tasks = tasks[:filter.Limit]
	}
	return tasks, nil
}
