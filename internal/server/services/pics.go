package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/mygymbro/mygymbro/internal/server/config"
	"github.com/mygymbro/mygymbro/internal/server/repositories/users"
)

// indirections for tests
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// PicService hands out presigned URLs for progress pictures stored in an
// S3-compatible backend. The picture bytes never pass through this server;
// only the storage keys are kept, on the user document.
type PicService struct {
	users  users.Repository
	config *sc.Config
}

func NewPicService(u users.Repository, config *sc.Config) *PicService {
	return &PicService{users: u, config: config}
}

// PicURL pairs a stored key with a short-lived download URL.
type PicURL struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func picStorageKey(userID string) string {
	d := time.Now()
	return fmt.Sprintf("pics/%s/%d/%d/%d/%v", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *PicService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// NewUploadURL generates a storage key, records it on the user document and
// returns a presigned PUT URL for the client to upload the picture directly.
func (s *PicService) NewUploadURL(ctx context.Context, userID string) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := picStorageKey(userID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	if err := s.users.AppendProgressPic(ctx, userID, key); err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// PicURLs returns a presigned GET URL for every stored progress picture, in
// upload order.
func (s *PicService) PicURLs(ctx context.Context, userID string) ([]PicURL, error) {

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket

	urls := make([]PicURL, 0, len(user.ProgressPics))
	for _, key := range user.ProgressPics {
		req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
			Bucket: &bucket,
			Key:    aws.String(key),
		}, s3.WithPresignExpires(15*time.Minute))
		if err != nil {
			return nil, err
		}
		urls = append(urls, PicURL{Key: key, URL: req.URL})
	}

	return urls, nil
}
