package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lezzetly/lezzetly-backend/config"
)

// ImageService stores caller-submitted recipe images in S3 and returns their
// public URLs. Submissions may reference images by URL or carry them inline
// as base64 data.
type ImageService struct {
	s3Config *config.S3Config
	client   *http.Client
	logger   *zap.Logger
}

// NewImageService creates a new ImageService instance.
func NewImageService(s3Config *config.S3Config, logger *zap.Logger) *ImageService {
	return &ImageService{
		s3Config: s3Config,
		client:   &http.Client{Timeout: 60 * time.Second},
		logger:   logger,
	}
}

// StoreImages persists each submitted image under the recipe's key prefix.
// An image that cannot be fetched or decoded is skipped with a warning so a
// single bad reference does not fail the whole submission.
func (s *ImageService) StoreImages(ctx context.Context, recipeID string, images []string) ([]string, error) {
	urls := make([]string, 0, len(images))
	for i, img := range images {
		data, err := s.fetchImage(ctx, img)
		if err != nil {
			s.logger.Warn("skipping unusable submitted image",
				zap.String("recipe_id", recipeID), zap.Int("index", i), zap.Error(err))
			continue
		}
		fileName := fmt.Sprintf("recipe-images/%s/%s.png", recipeID, uuid.New().String())
		url, err := s.uploadToS3(ctx, data, fileName)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// fetchImage resolves a submitted image reference to raw bytes.
func (s *ImageService) fetchImage(ctx context.Context, img string) ([]byte, error) {
	if strings.HasPrefix(img, "data:") {
		idx := strings.Index(img, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data URL")
		}
		data, err := base64.StdEncoding.DecodeString(img[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode inline image: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, img, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image URL: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image, status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// uploadToS3 uploads image data and returns the public URL.
func (s *ImageService) uploadToS3(ctx context.Context, imageData []byte, fileName string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName), nil
}
