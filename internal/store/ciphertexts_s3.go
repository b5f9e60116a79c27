package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

// S3API is the subset of the S3 client used by the ciphertext store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Ciphertexts struct {
	client S3API
	bucket string
}

// NewS3Client builds an S3 client for an S3-compatible endpoint such as
// MinIO, using static credentials.
func NewS3Client(ctx context.Context, cfg config.S3) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading s3 config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// NewS3CiphertextStorage stores ciphertexts as objects named after their
// handle in bucket.
func NewS3CiphertextStorage(client S3API, bucket string) CiphertextStorage {
	return &s3Ciphertexts{client: client, bucket: bucket}
}

func (s *s3Ciphertexts) Put(ctx context.Context, data []byte) (models.Handle, error) {
	handle := utils.ContentHandle(data)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(handle.String()),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/octet-stream"),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3Ciphertexts.Put").Str("handle", handle.String()).Msg("error uploading ciphertext")
		return "", fmt.Errorf("error uploading ciphertext: %w", err)
	}

	return handle, nil
}

func (s *s3Ciphertexts) Get(ctx context.Context, handle models.Handle) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(handle.String()),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: %s", ErrCiphertextNotFound, handle)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*s3Ciphertexts.Get").Str("handle", handle.String()).Msg("error downloading ciphertext")
		return nil, fmt.Errorf("error downloading ciphertext: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading ciphertext body: %w", err)
	}

	return data, nil
}
