package storage

import (
	"context"
	"testing"
	"time"

	"backstage-api/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitS3PresignsOffline(t *testing.T) {
	client, err := InitS3(context.Background(), utils.StorageConfig{
		AccessKeyID:     "AKIATEST",
		SecretAccessKey: "secret",
		Region:          "eu-north-1",
		Bucket:          "photos",
		Endpoint:        "http://localhost:9000",
		UsePathStyle:    true,
		PresignExpiry:   180 * time.Second,
	})
	require.NoError(t, err)

	req, err := client.PresignGetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String("photos"),
		Key:    aws.String("music-halls:1:2.JPG"),
	}, s3.WithPresignExpires(180*time.Second))
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Contains(t, req.URL, "http://localhost:9000/photos/")
	assert.Contains(t, req.URL, "X-Amz-Expires=180")
	assert.Contains(t, req.URL, "X-Amz-Credential=AKIATEST")
}

var _ S3Iface = (*S3)(nil)
var _ s3.ListObjectsV2APIClient = (S3Iface)(nil)
