package uploads

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// S3Uploader implements domain.AvatarUploader against any S3-compatible
// object store (MinIO in development)
type S3Uploader struct {
	region        string
	endpoint      string
	bucket        string
	accessKey     string
	secretKey     string
	publicBaseURL string
}

// NewS3Uploader creates an avatar uploader
func NewS3Uploader(region, endpoint, bucket, accessKey, secretKey, publicBaseURL string) domain.AvatarUploader {
	return &S3Uploader{
		region:        region,
		endpoint:      endpoint,
		bucket:        bucket,
		accessKey:     accessKey,
		secretKey:     secretKey,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (u *S3Uploader) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(u.region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.accessKey,
			u.secretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if u.endpoint != "" {
			o.BaseEndpoint = aws.String(u.endpoint)
			o.UsePathStyle = true
		}
	})

	return client, nil
}

// storageKey buckets objects by date so listings stay manageable
func storageKey(ext string) string {
	d := time.Now()
	return fmt.Sprintf("avatars/%d/%02d/%02d/%s%s", d.Year(), int(d.Month()), d.Day(), uuid.New(), ext)
}

// Upload implements domain.AvatarUploader. The staged local file is removed
// after a successful upload.
func (u *S3Uploader) Upload(ctx context.Context, localPath string) (string, error) {
	client, err := u.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to build s3 client: %w", err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open staged avatar: %w", err)
	}
	defer f.Close()

	ext := filepath.Ext(localPath)
	key := storageKey(ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	_ = os.Remove(localPath)

	return u.publicBaseURL + "/" + key, nil
}
