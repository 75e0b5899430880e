package photos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

func stubS3(t *testing.T) *string {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		if lo.Credentials == nil {
			t.Fatalf("credentials not applied")
		}
		return aws.Config{}, nil
	}

	var capturedBaseEndpoint string
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint != nil {
			capturedBaseEndpoint = *opts.BaseEndpoint
		}
		if !opts.UsePathStyle {
			t.Fatalf("path-style addressing expected")
		}
		return &s3.Client{}
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		if c == nil {
			t.Fatalf("nil client passed to presign")
		}
		return &s3.PresignClient{}
	}

	return &capturedBaseEndpoint
}

func testS3Config() S3Config {
	return S3Config{
		Bucket:       "sightings",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000",
		RootUser:     "minioadmin",
		RootPassword: "minioadmin",
	}
}

func TestS3Resolver_PresignsGet(t *testing.T) {
	endpoint := stubS3(t)

	var gotBucket, gotKey string
	var gotExpiry time.Duration
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotBucket, gotKey = *in.Bucket, *in.Key
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		gotExpiry = po.Expires
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/sightings/fox.jpg?X-Amz-Signature=abc"}, nil
	}

	r, err := NewS3Resolver(context.Background(), testS3Config())
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:9000", *endpoint)

	u, err := r.URL(context.Background(), "fox.jpg")
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:9000/sightings/fox.jpg?X-Amz-Signature=abc", u)
	require.Equal(t, "sightings", gotBucket)
	require.Equal(t, "fox.jpg", gotKey)
	require.Equal(t, PresignExpiry, gotExpiry)
}

func TestS3Resolver_EmptyKeySkipsPresign(t *testing.T) {
	stubS3(t)
	presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		t.Fatalf("presign must not be called")
		return nil, nil
	}

	r, err := NewS3Resolver(context.Background(), testS3Config())
	require.NoError(t, err)

	u, err := r.URL(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, u)
}

func TestS3Resolver_Errors(t *testing.T) {
	stubS3(t)
	presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}

	r, err := NewS3Resolver(context.Background(), testS3Config())
	require.NoError(t, err)
	_, err = r.URL(context.Background(), "fox.jpg")
	require.EqualError(t, err, "presign-fail")

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = NewS3Resolver(context.Background(), testS3Config())
	require.EqualError(t, err, "load-fail")
}
