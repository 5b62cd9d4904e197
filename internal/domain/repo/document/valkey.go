package document

import (
	"context"
	"errors"
	"syscall"

	"github.com/valkey-io/valkey-go"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/domain/entity"
)

const (
	categoryValkeyClientError = "valkey_client"
)

// ValkeyRepo stores each namespace as a json string under <prefix><namespace>.
type ValkeyRepo struct {
	client    valkey.Client
	keyPrefix string
}

func NewValkeyRepo(client valkey.Client, keyPrefix string) ValkeyRepo {
	return ValkeyRepo{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r ValkeyRepo) ReadDocument(ctx context.Context, namespace string) (entity.Document, error) {
	command := r.client.B().Get().Key(r.key(namespace)).Build()

	data, err := r.client.Do(ctx, command).AsBytes()
	if err != nil {
		switch {
		case valkey.IsValkeyNil(err):
			return entity.Document{}, nil
		case r.isRetryable(err):
			return nil, common.NewRetryableErrProcessingError(err, categoryValkeyClientError, nil, "failed to get %s", namespace)
		default:
			return nil, common.NewErrProcessingError(err, categoryValkeyClientError, nil, "failed to get %s", namespace)
		}
	}

	return decode(namespace, data)
}

func (r ValkeyRepo) WriteDocument(ctx context.Context, namespace string, doc entity.Document) error {
	data, err := encode(namespace, doc)
	if err != nil {
		return err
	}

	command := r.client.B().Set().Key(r.key(namespace)).Value(valkey.BinaryString(data)).Build()

	err = r.client.Do(ctx, command).Error()
	if err != nil {
		switch {
		case r.isRetryable(err):
			return common.NewRetryableErrProcessingError(err, categoryValkeyClientError, nil, "failed to set %s", namespace)
		default:
			return common.NewErrProcessingError(err, categoryValkeyClientError, nil, "failed to set %s", namespace)
		}
	}

	return nil
}

func (r ValkeyRepo) key(namespace string) string {
	return r.keyPrefix + namespace
}

func (r ValkeyRepo) isRetryable(err error) bool {
	// Network error
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	// Valkey specific error
	vErr, isValkeyError := valkey.IsValkeyErr(err)
	if !isValkeyError {
		return false
	}

	return vErr.IsTryAgain()
}
