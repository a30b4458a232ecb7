package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"cyclebook/config"
	"cyclebook/infras/otel"
	"cyclebook/shared/constant"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	defaultRegion     = "auto"
)

// S3 stores documents in an S3 compatible bucket.
type S3 interface {
	Enabled() bool
	UploadBytes(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error)
	UploadJSON(ctx context.Context, directory, fileName string, value any) (url string, err error)
}

type s3Impl struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	otel         otel.Otel
}

// New returns a disabled store when EXTERNAL_S3_ENABLE is off.
func New(cfg *config.Config, ot otel.Otel) (S3, error) {
	s3Cfg := cfg.External.S3
	if !s3Cfg.Enable {
		log.Info().Msg("Object storage disabled, ride receipts are not archived")

		return disabled{}, nil
	}

	staticProvider := credentials.NewStaticCredentialsProvider(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, "")

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Cfg.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	log.Info().Str("bucket", s3Cfg.BucketName).Msg("Object storage initialized")

	return &s3Impl{
		client:       client,
		bucket:       s3Cfg.BucketName,
		publicDomain: strings.TrimSuffix(s3Cfg.PublicDomain, "/"),
		otel:         ot,
	}, nil
}

func (svc *s3Impl) Enabled() bool {
	return true
}

func (svc *s3Impl) UploadJSON(ctx context.Context, directory, fileName string, value any) (url string, err error) {
	data, err := json.Marshal(value)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to marshal object: %w", err)
	}

	return svc.UploadBytes(ctx, directory, fileName, constant.ContentTypeJSON, data)
}

func (svc *s3Impl) UploadBytes(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadBytes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectKey := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	reader := bytes.NewReader(data)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(objectKey),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload object to S3")

		return constant.Empty, fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return PublicURL(svc.publicDomain, svc.bucket, objectKey), nil
}

// PublicURL builds the address an object is served from.
func PublicURL(publicDomain, bucket, objectKey string) string {
	if publicDomain == "" {
		return fmt.Sprintf("s3://%s/%s", bucket, objectKey)
	}

	return fmt.Sprintf("%s/%s", publicDomain, objectKey)
}

type disabled struct{}

func (disabled) Enabled() bool { return false }

func (disabled) UploadBytes(context.Context, string, string, string, []byte) (string, error) {
	return constant.Empty, nil
}

func (disabled) UploadJSON(context.Context, string, string, any) (string, error) {
	return constant.Empty, nil
}
