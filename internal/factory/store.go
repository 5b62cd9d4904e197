package factory

import (
	"context"
	"fmt"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/domain/repo"
	"github.com/pterobot/pterobot/internal/domain/repo/document"
)

const (
	valkeyKeyPrefix = "pterobot:"
)

// CreateDocumentStore opens the document backend selected by conf.Backend.
func CreateDocumentStore(ctx context.Context, conf config.Store) (repo.Document, common.CloseFunc, error) {
	switch conf.Backend {
	case config.StoreBackendBadger, "":
		db, closeFunc, err := CreateBadgerDB(conf.Badger)
		if err != nil {
			return nil, nil, err
		}

		return document.NewBadgerRepo(db), closeFunc, nil
	case config.StoreBackendValkey:
		client, closeFunc, err := CreateValkeyClient(ctx, conf.Valkey)
		if err != nil {
			return nil, nil, err
		}

		return document.NewValkeyRepo(client, valkeyKeyPrefix), closeFunc, nil
	case config.StoreBackendS3:
		client, err := CreateS3Client(ctx, conf.S3)
		if err != nil {
			return nil, nil, err
		}

		return document.NewS3Repo(client, conf.S3.Bucket, conf.S3.KeyPrefix), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", conf.Backend)
	}
}
