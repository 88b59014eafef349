package archive

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"frontdesk-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Settings for the S3-compatible artifact archive (Cloudflare R2).
type Settings struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
}

// R2Archiver uploads generated bill artifacts to R2 so exports survive the
// front-desk machine. Every export is keyed by date.
type R2Archiver struct {
	client *s3.Client
	bucket string
}

// New creates an archiver, or returns nil when the settings are incomplete
// so archiving stays disabled.
func New(st Settings) *R2Archiver {
	if st.Endpoint == "" || st.AccessKey == "" || st.SecretKey == "" || st.Bucket == "" {
		return nil
	}
	if st.Region == "" {
		st.Region = "auto"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			st.AccessKey,
			st.SecretKey,
			"",
		)),
		awsconfig.WithRegion(st.Region),
	)
	if err != nil {
		log.Printf("[Archive] Failed to configure R2 client: %v", err)
		return nil
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(st.Endpoint)
	})

	return &R2Archiver{client: client, bucket: st.Bucket}
}

// Upload stores one artifact under exports/<date>/<filename>.
func (a *R2Archiver) Upload(filename, contentType string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := fmt.Sprintf("exports/%s/%s", timeutil.Today(), filename)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	log.Printf("[Archive] Uploaded %s (%d bytes)", key, len(data))
	return nil
}
