package photos

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignExpiry is how long a presigned photo URL stays valid.
const PresignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Config describes an S3-compatible bucket, e.g. MinIO.
type S3Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	RootUser     string
	RootPassword string
}

// S3Resolver hands out presigned GET URLs for objects in one bucket.
type S3Resolver struct {
	bucket  string
	presign *s3.PresignClient
}

// NewS3Resolver builds the presign client once with static credentials and
// path-style addressing.
func NewS3Resolver(ctx context.Context, c S3Config) (*S3Resolver, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.RootUser,     // MINIO_ROOT_USER
			c.RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Resolver{bucket: c.Bucket, presign: newS3PresignClient(client)}, nil
}

func (r *S3Resolver) URL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	bucket := r.bucket
	req, err := presignGetObject(r.presign, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
