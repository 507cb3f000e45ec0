// Package storage uploads user images to an S3-compatible backend (MinIO in
// development) and resolves their public URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	appcfg "rentnest/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Buckets, one per image class.
const (
	BucketProductPictures  = "product-pictures"
	BucketDonationPictures = "donation-pictures"
	BucketProfilePictures  = "profile-pictures"
	BucketQueryPictures    = "query-pictures"
)

type ImageStore interface {
	// Upload writes the object and returns its public URL.
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
	PublicURL(bucket, key string) string
}

type s3Store struct {
	client     *s3.Client
	publicBase string
}

func NewS3Store(cfg *appcfg.Config) (ImageStore, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &s3Store{
		client:     client,
		publicBase: strings.TrimRight(cfg.S3PublicBase, "/"),
	}, nil
}

// ObjectKey builds a collision-free key scoped to the uploading user.
func ObjectKey(userID uuid.UUID, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("%s/%d/%s.%s", userID, time.Now().UnixMilli(), uuid.New(), ext)
}

func (s *s3Store) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}
	return s.PublicURL(bucket, key), nil
}

func (s *s3Store) PublicURL(bucket, key string) string {
	return s.publicBase + "/" + bucket + "/" + key
}
