package document

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/domain/entity"
)

const (
	categoryS3ClientError = "s3_client"

	contentType = "application/json"
)

// ObjectAPI is the subset of *s3.Client used by S3Repo.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Repo stores each namespace as <prefix>/<namespace>.json.
type S3Repo struct {
	client ObjectAPI

	bucket string
	prefix string
}

func NewS3Repo(client ObjectAPI, bucket string, prefix string) S3Repo {
	return S3Repo{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (r S3Repo) ReadDocument(ctx context.Context, namespace string) (entity.Document, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.computeObjectKey(namespace)),
	})
	if err != nil {
		switch {
		case isNotFound(err):
			return entity.Document{}, nil
		case isRetryable(err):
			return nil, common.NewRetryableErrProcessingError(err, categoryS3ClientError, nil, "failed to get %s", namespace)
		default:
			return nil, common.NewErrProcessingError(err, categoryS3ClientError, nil, "failed to get %s", namespace)
		}
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, common.NewRetryableErrProcessingError(err, categoryS3ClientError, nil, "failed to read %s", namespace)
	}

	return decode(namespace, data)
}

func (r S3Repo) WriteDocument(ctx context.Context, namespace string, doc entity.Document) error {
	data, err := encode(namespace, doc)
	if err != nil {
		return err
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.computeObjectKey(namespace)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		if isRetryable(err) {
			return common.NewRetryableErrProcessingError(err, categoryS3ClientError, nil, "failed to put %s", namespace)
		}

		return common.NewErrProcessingError(err, categoryS3ClientError, nil, "failed to put %s", namespace)
	}

	return nil
}

func (r S3Repo) computeObjectKey(namespace string) string {
	return path.Join(r.prefix, namespace+".json")
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	// Some s3 compatible stores answer NotFound instead
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NotFound"
	}

	return false
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		// Transport error
		return true
	}

	return apiErr.ErrorFault() == smithy.FaultServer
}
