package document

import (
	"context"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/domain/entity"
)

const (
	categoryBadgerError = "badger"

	badgerKeyPrefix = "document:"
)

// BadgerRepo stores each namespace in a local badger database.
type BadgerRepo struct {
	db *badger.DB
}

func NewBadgerRepo(db *badger.DB) BadgerRepo {
	return BadgerRepo{db: db}
}

func (r BadgerRepo) ReadDocument(ctx context.Context, namespace string) (entity.Document, error) {
	var data []byte

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(namespace))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)

		return err
	})

	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return entity.Document{}, nil
	case err != nil:
		return nil, common.NewErrProcessingError(err, categoryBadgerError, nil, "failed to get %s", namespace)
	}

	return decode(namespace, data)
}

func (r BadgerRepo) WriteDocument(ctx context.Context, namespace string, doc entity.Document) error {
	data, err := encode(namespace, doc)
	if err != nil {
		return err
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(namespace), data)
	})
	if err != nil {
		if errors.Is(err, badger.ErrConflict) {
			return common.NewRetryableErrProcessingError(err, categoryBadgerError, nil, "failed to set %s", namespace)
		}

		return common.NewErrProcessingError(err, categoryBadgerError, nil, "failed to set %s", namespace)
	}

	return nil
}

func badgerKey(namespace string) []byte {
	return []byte(badgerKeyPrefix + namespace)
}
