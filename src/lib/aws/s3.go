package aws

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"onboarding/src/lib"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignTTL = 15 * time.Minute

func GetS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("Could not load default config: %s\n", err.Error())
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// S3Storage keeps uploads in a bucket and serves them through presigned URLs.
type S3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

var _ lib.Storage = (*S3Storage)(nil)

func NewS3Storage(client *s3.Client, bucket string) *S3Storage {
	return &S3Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}
}

func (s *S3Storage) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if !lib.ValidObjectName(name) {
		return lib.ErrInvalidObjectName
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		log.Printf("Could not put object to S3 bucket: %s\n", err.Error())
		return err
	}
	log.Printf("Added object '%s' to bucket '%s'", name, s.bucket)
	return nil
}

func (s *S3Storage) Remove(ctx context.Context, name string) error {
	if !lib.ValidObjectName(name) {
		return lib.ErrInvalidObjectName
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	return err
}

func (s *S3Storage) Serve(w http.ResponseWriter, r *http.Request, name string) {
	if !lib.ValidObjectName(name) {
		http.NotFound(w, r)
		return
	}
	req, err := s.presign.PresignGetObject(r.Context(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	}, func(po *s3.PresignOptions) {
		po.Expires = presignTTL
	})
	if err != nil {
		log.Printf("Could not generate presigned URL for object [%s]: %s\n", name, err.Error())
		http.Error(w, "storage unavailable", http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, req.URL, http.StatusTemporaryRedirect)
}
