package config

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePresignedURL(t *testing.T) {
	client := s3.New(s3.Options{
		Region: "us-east-1",
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{AccessKeyID: "test-key", SecretAccessKey: "test-secret"}, nil
		}),
	})
	cfg := &S3Config{Client: client, BucketName: "demeter-test"}

	url, err := cfg.GeneratePresignedURL(context.Background(), "scans/user-1/fridge/abc.jpg", 15*time.Minute)
	require.NoError(t, err)

	assert.Contains(t, url, "demeter-test")
	assert.Contains(t, url, "scans/user-1/fridge/abc.jpg")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=900")
}
