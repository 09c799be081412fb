// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
)

const vendorName = "objectstore"

type Config struct {
	Bucket       string
	Region       string
	Endpoint     string
	UsePathStyle bool
	// PublicURL is the base that uploaded keys are served from, defaults to the bucket URL.
	PublicURL string
}

// putObjectAPI is the subset of the s3 client used here.
type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ UploaderInterface = (*Store)(nil)

type Store struct {
	client    putObjectAPI
	bucket    string
	publicURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Key builds an object key from path segments.
func Key(parts ...string) string {
	return strings.TrimPrefix(path.Join(parts...), "/")
}

// Put uploads data under key and returns the public URL of the object.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "objectstore.Store.Put")
	defer span.End()

	if key == "" || len(data) == 0 {
		return "", vendors.NewError(vendorName, vendors.CodeInvalidRequest, "key and data are required")
	}

	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", normalize(err)
	}

	s.logger.Debugf("uploaded %d bytes to %s/%s", len(data), s.bucket, key)

	return s.URL(key), nil
}

func (s *Store) URL(key string) string {
	return s.publicURL + "/" + key
}

func normalize(err error) error {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() != 0 {
		return vendors.FromStatus(vendorName, respErr.HTTPStatusCode(), err.Error(), nil)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "SlowDown", "RequestLimitExceeded", "Throttling":
			return vendors.NewError(vendorName, vendors.CodeRateLimited, apiErr.ErrorMessage())
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken":
			return vendors.NewError(vendorName, vendors.CodeUnauthorized, apiErr.ErrorMessage())
		case "NoSuchBucket", "InvalidBucketName", "EntityTooLarge":
			return vendors.NewError(vendorName, vendors.CodeInvalidRequest, apiErr.ErrorMessage())
		case "InternalError", "ServiceUnavailable":
			return vendors.NewError(vendorName, vendors.CodeUnavailable, apiErr.ErrorMessage())
		}
	}

	return vendors.Classify(vendorName, err)
}

func publicBase(cfg Config) string {
	switch {
	case cfg.PublicURL != "":
		return strings.TrimRight(cfg.PublicURL, "/")
	case cfg.Endpoint != "":
		return fmt.Sprintf("%s/%s", strings.TrimRight(cfg.Endpoint, "/"), cfg.Bucket)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

// NewStore loads the default AWS configuration chain, with the region and endpoint overrides from cfg.
func NewStore(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Store, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newStore(client, cfg, tracer, monitor, logger), nil
}

func newStore(client putObjectAPI, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Store {
	s := new(Store)

	s.client = client
	s.bucket = cfg.Bucket
	s.publicURL = publicBase(cfg)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
