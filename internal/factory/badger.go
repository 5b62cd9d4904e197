package factory

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/config"
)

func CreateBadgerDB(conf config.Badger) (*badger.DB, common.CloseFunc, error) {
	opts := badger.DefaultOptions(filepath.Clean(conf.Path))
	opts.Logger = nil

	ret, err := badger.Open(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open badger db %s: %w", conf.Path, err)
	}

	shutdown := func(context.Context) error {
		return ret.Close()
	}

	return ret, shutdown, nil
}
