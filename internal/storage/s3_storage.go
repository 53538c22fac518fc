package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/niceliubing/real-estate/internal/config"
)

// s3Storage implements ImageStorage on an S3 bucket. Selected when
// STORAGE_BACKEND is "s3"; the public URL is built from the configured
// image base URL.
type s3Storage struct {
	cfg      *config.Config
	s3Client *s3.Client
}

// NewS3Storage creates a new S3-backed image store.
func NewS3Storage(cfg *config.Config) (ImageStorage, error) {
	awsCfg, err := aws_config.LoadDefaultConfig(context.TODO(),
		aws_config.WithRegion(cfg.AwsRegion),
		// Use static credentials from config for simplicity.
		// For production, prefer IAM roles or other secure credential methods.
		aws_config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AwsAccessKeyID,
			cfg.AwsSecretAccessKey,
			"", // session token
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &s3Storage{
		cfg:      cfg,
		s3Client: s3.NewFromConfig(awsCfg),
	}, nil
}

// Save puts the image bytes into the bucket under a generated unique
// key and returns its public URL.
func (s *s3Storage) Save(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	objectKey := "uploads/properties/" + GenerateImageName(originalName)

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.AwsS3Bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", objectKey, err)
	}

	log.Printf("Uploaded image to S3 key: %s", objectKey)
	return strings.TrimSuffix(s.cfg.ImageBaseS3URL, "/") + "/" + objectKey, nil
}
