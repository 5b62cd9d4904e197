package factory

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/logging"
	"github.com/go-logr/logr"

	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/log"
)

func CreateS3Client(ctx context.Context, conf config.S3) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(conf.Region),
		awsconfig.WithLogger(AWSLogger{log.Logger()}),
	}

	// Without static creds, the default chain (env, shared config, instance role) is used
	if conf.Creds.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(conf.Creds.AccessKeyID, conf.Creds.SecretAccessKey, "")))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws config: %w", err)
	}

	if conf.BaseEndpoint != "" {
		awsConfig.BaseEndpoint = normalizeEndpoint(conf.BaseEndpoint)
	}

	ret := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.UsePathStyle = conf.UsePathStyle
	})

	return ret, nil
}

func normalizeEndpoint(endpoint string) *string {
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = fmt.Sprintf("https://%s", endpoint)
	}

	return &endpoint
}

// AWSLogger forwards the sdk logs to logr: debug at V(3), warnings at V(0).
type AWSLogger struct {
	logger logr.Logger
}

func (a AWSLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	level := 0

	switch classification {
	case logging.Debug:
		level = 3
	case logging.Warn:
		level = 0
	default:
		return
	}

	msg := fmt.Sprintf(format, v...)

	a.logger.V(level).Info(msg, "source", "aws-sdk")
}
