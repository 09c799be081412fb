// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func newTestStore(client putObjectAPI, cfg Config) *Store {
	logger := logging.NewNoopLogger()
	return newStore(client, cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestPut(t *testing.T) {
	fake := new(fakeS3)
	s := newTestStore(fake, Config{Bucket: "media", PublicURL: "https://cdn.example.com/"})

	url, err := s.Put(context.Background(), Key("org", "out", "audio.mp3"), []byte("ID3"), "audio/mpeg")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/org/out/audio.mp3", url)
	assert.Equal(t, "media", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "org/out/audio.mp3", aws.ToString(fake.in.Key))
	assert.Equal(t, "audio/mpeg", aws.ToString(fake.in.ContentType))
	assert.Equal(t, []byte("ID3"), fake.body)
}

func TestPutRejectsEmpty(t *testing.T) {
	fake := new(fakeS3)
	s := newTestStore(fake, Config{Bucket: "media"})

	_, err := s.Put(context.Background(), "k", nil, "")

	var e *vendors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, vendors.CodeInvalidRequest, e.Code)
	assert.Nil(t, fake.in)
}

func TestPutErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		code      string
		retryable bool
	}{
		{
			name:      "throttled",
			err:       &smithy.GenericAPIError{Code: "SlowDown", Message: "reduce your request rate"},
			code:      vendors.CodeRateLimited,
			retryable: true,
		},
		{
			name:      "access denied",
			err:       &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"},
			code:      vendors.CodeUnauthorized,
			retryable: false,
		},
		{
			name: "http 503",
			err: &awshttp.ResponseError{
				ResponseError: &smithyhttp.ResponseError{
					Response: &smithyhttp.Response{Response: &http.Response{StatusCode: http.StatusServiceUnavailable}},
					Err:      errors.New("unavailable"),
				},
			},
			code:      vendors.CodeUnavailable,
			retryable: true,
		},
		{
			name:      "deadline",
			err:       context.DeadlineExceeded,
			code:      vendors.CodeTimeout,
			retryable: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestStore(&fakeS3{err: test.err}, Config{Bucket: "media"})

			_, err := s.Put(context.Background(), "k", []byte("x"), "")

			var e *vendors.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, test.code, e.Code)
			assert.Equal(t, test.retryable, e.Retryable)
		})
	}
}

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com", publicBase(Config{Bucket: "media", Region: "eu-west-1"}))
	assert.Equal(t, "http://minio:9000/media", publicBase(Config{Bucket: "media", Endpoint: "http://minio:9000/"}))
	assert.Equal(t, "https://cdn", publicBase(Config{Bucket: "media", PublicURL: "https://cdn/"}))
}
