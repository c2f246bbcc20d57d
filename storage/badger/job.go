package badger

import (
	"bytes"
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/docflow/core"
	"github.com/poiesic/docflow/storage"
)

// JobRepository implements storage.JobRepository for BadgerDB.
type JobRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.JobRepository = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository.
func NewJobRepository(backend *Backend) (*JobRepository, error) {
	idSeq, err := backend.GetSequence(jobIDSeq)
	if err != nil {
		return nil, err
	}

	return &JobRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *JobRepository) Close() error {
	return r.idSeq.Release()
}

// AddJob persists a new job, generating its ID from sequence.
func (r *JobRepository) AddJob(ctx context.Context, job *core.Job) (*core.Job, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if job.Id == 0 {
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			job.Id = core.ID(nextID)
		}

		if job.CreatedAt.IsZero() {
			// Truncate to the serialized precision so the stored value
			// round-trips exactly
			job.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
		}
		job.UpdatedAt = job.CreatedAt

		key := makeJobKey(job.Id)
		if err := tx.Set(key, storage.MarshalJob(job)); err != nil {
			return err
		}

		dateKey := makeJobDateKey(job.CreatedAt, job.Id)
		if err := tx.Set(dateKey, storage.MarshalID(job.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return job, err
}

// UpdateJob persists changes to an existing job.
func (r *JobRepository) UpdateJob(ctx context.Context, job *core.Job) (*core.Job, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeJobKey(job.Id)

		old, err := r.readJob(tx, key)
		if err != nil {
			return err
		}
		if old == nil {
			return storage.ErrNotFound
		}

		// CreatedAt and the date index are immutable after AddJob
		job.CreatedAt = old.CreatedAt
		job.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

		if err := tx.Set(key, storage.MarshalJob(job)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return job, err
}

// GetJob retrieves a single job by ID.
func (r *JobRepository) GetJob(ctx context.Context, id core.ID) (*core.Job, error) {
	var result *core.Job
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readJob(tx, makeJobKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListJobs retrieves jobs matching the filter, most recent first.
func (r *JobRepository) ListJobs(ctx context.Context, filter storage.JobFilter) ([]*core.Job, error) {
	var jobs []*core.Job

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(jobDatePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		start := []byte(jobDatePrefix + ":")
		if !filter.Since.IsZero() {
			start = partialCompositeKey(jobDatePrefix, uint64(filter.Since.UnixMicro()))
		}

		for iter.Seek(start); iter.Valid(); iter.Next() {
			if !filter.Until.IsZero() {
				limitKey := partialCompositeKey(jobDatePrefix, uint64(filter.Until.UnixMicro()))
				if bytes.Compare(iter.Item().Key(), limitKey) >= 0 {
					break
				}
			}

			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			job, err := r.readJob(tx, makeJobKey(id))
			if err != nil {
				return err
			}
			if job == nil {
				continue
			}
			if filter.Workspace != "" && job.Workspace != filter.Workspace {
				continue
			}
			if filter.Status != 0 && job.Status != filter.Status {
				continue
			}
			jobs = append(jobs, job)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Index scan yields ascending creation time; callers want newest first
	slices.Reverse(jobs)

	if filter.Limit > 0 && len(jobs) > filter.Limit {
		jobs = jobs[:filter.Limit]
	}
	return jobs, nil
}

// readJob reads a job by key, returning nil if the key does not exist.
func (r *JobRepository) readJob(tx *badger.Txn, key []byte) (*core.Job, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var job *core.Job
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		job, unmarshalErr = storage.UnmarshalJob(val)
		return unmarshalErr
	})
	return job, err
}
