package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/config"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
)

var ErrMissingBucket = errors.New("s3 bucket is not configured")

// ObjectAPI 是 S3Provider 用到的 s3.Client 方法子集
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Provider struct {
	api    ObjectAPI
	bucket string
	prefix string
}

func NewS3Provider(ctx context.Context, cfg *config.Config) (*S3Provider, error) {
	s3cfg := cfg.Storage.S3
	if s3cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(s3cfg.Region),
	}
	if s3cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3cfg.AccessKey, s3cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3cfg.Endpoint != "" {
			// MinIO 等自建服务需要指定 endpoint 并使用 path-style
			o.BaseEndpoint = aws.String(s3cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3ProviderWithAPI(client, s3cfg.Bucket, s3cfg.Prefix), nil
}

func NewS3ProviderWithAPI(api ObjectAPI, bucket, prefix string) *S3Provider {
	return &S3Provider{api: api, bucket: bucket, prefix: prefix}
}

func (s *S3Provider) key(name string) string {
	return path.Join(s.prefix, path.Base(name))
}

func (s *S3Provider) Put(ctx context.Context, name string, body io.ReadSeeker, contentType string) (string, error) {
	key := s.key(name)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.api.PutObject(ctx, input); err != nil {
		return "", err
	}

	return key, nil
}

func (s *S3Provider) Get(ctx context.Context, name string) (*FileObject, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	obj := &FileObject{
		Body:          out.Body,
		ContentType:   aws.ToString(out.ContentType),
		ContentLength: aws.ToInt64(out.ContentLength),
	}
	if out.LastModified != nil {
		obj.LastModified = *out.LastModified
	}

	return obj, nil
}
