package document

import (
	"encoding/json"
	"errors"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/domain/entity"
)

const (
	categoryCodec = "document_codec"
)

var ErrNotAnObject = errors.New("stored document is not a json object")

func encode(namespace string, doc entity.Document) ([]byte, error) {
	if doc == nil {
		doc = entity.Document{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, common.NewErrProcessingError(err, categoryCodec, nil, "failed to marshal %s", namespace)
	}

	return data, nil
}

// decode returns an empty document for empty data.
func decode(namespace string, data []byte) (entity.Document, error) {
	if len(data) == 0 {
		return entity.Document{}, nil
	}

	var ret entity.Document

	err := json.Unmarshal(data, &ret)
	if err != nil {
		return nil, common.NewErrProcessingError(err, categoryCodec, nil, "failed to unmarshal %s", namespace)
	}

	if ret == nil {
		return nil, common.NewErrProcessingError(ErrNotAnObject, categoryCodec, nil, "failed to unmarshal %s", namespace)
	}

	return ret, nil
}
