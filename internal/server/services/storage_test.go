package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "cinevault/internal/server/config"
)

func stubPresignSeams(t *testing.T) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewClient := newS3ClientFromConfig
	origNewPresign := newS3PresignClient
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewClient
		newS3PresignClient = origNewPresign
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return nil
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return nil
	}
}

func storageConfig() *sc.Config {
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	cfg.S3Bucket = "videos"
	cfg.S3Region = "us-east-1"
	return cfg
}

func TestRequestUploadURL(t *testing.T) {
	stubPresignSeams(t)

	var gotBucket, gotKey string
	origPut := presignPutObject
	t.Cleanup(func() { presignPutObject = origPut })
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotBucket, gotKey = *in.Bucket, *in.Key
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/put"}, nil
	}

	s := NewStorageService(storageConfig())

	key, url, err := s.RequestUploadURL(context.Background())
	if err != nil {
		t.Fatalf("RequestUploadURL error: %v", err)
	}
	if url != "https://s3.local/put" {
		t.Errorf("url = %q", url)
	}
	if gotBucket != "videos" {
		t.Errorf("bucket = %q, want videos", gotBucket)
	}
	if key != gotKey {
		t.Errorf("returned key %q differs from presigned key %q", key, gotKey)
	}
	if !strings.HasPrefix(key, "videos/") {
		t.Errorf("key = %q, want videos/ prefix", key)
	}

	// keys are unique per request
	key2, _, err := s.RequestUploadURL(context.Background())
	if err != nil {
		t.Fatalf("RequestUploadURL error: %v", err)
	}
	if key2 == key {
		t.Error("two upload requests returned the same key")
	}
}

func TestRequestDownloadURL(t *testing.T) {
	stubPresignSeams(t)

	origGet := presignGetObject
	t.Cleanup(func() { presignGetObject = origGet })
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if *in.Key != "videos/2026/1/2/abc" {
			t.Errorf("key = %q", *in.Key)
		}
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/get"}, nil
	}

	s := NewStorageService(storageConfig())

	url, err := s.RequestDownloadURL(context.Background(), "videos/2026/1/2/abc")
	if err != nil {
		t.Fatalf("RequestDownloadURL error: %v", err)
	}
	if url != "https://s3.local/get" {
		t.Errorf("url = %q", url)
	}
}

func TestRequestUploadURL_PresignError(t *testing.T) {
	stubPresignSeams(t)

	wantErr := errors.New("presign failed")
	origPut := presignPutObject
	t.Cleanup(func() { presignPutObject = origPut })
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, wantErr
	}

	s := NewStorageService(storageConfig())

	_, _, err := s.RequestUploadURL(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}
