package aws

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/sirupsen/logrus"

	"github.com/seventv/LogoAnimator/src/global"
	"github.com/seventv/LogoAnimator/src/utils"
)

var (
	AclPublicRead       = utils.StringPointer(s3.ObjectCannedACLPublicRead)
	DefaultCacheControl = utils.StringPointer("public, max-age=15552000")
)

type S3Instance struct {
	session *session.Session
}

func NewS3(ctx global.Context) global.AwsS3 {
	cfg := ctx.Config().Aws

	awsCfg := aws.NewConfig().WithRegion(cfg.Region)
	if cfg.AccessToken != "" {
		awsCfg = awsCfg.WithCredentials(credentials.NewStaticCredentials(cfg.AccessToken, cfg.SecretKey, ""))
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		logrus.Fatal("failed to create aws session: ", err)
	}

	return &S3Instance{
		session: sess,
	}
}

func (a *S3Instance) UploadFile(ctx context.Context, bucket, key string, data io.Reader, contentType, acl, cacheControl *string) error {
	uploader := s3manager.NewUploader(a.session)

	_, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(key),
		Body:         data,
		ContentType:  contentType,
		ACL:          acl,
		CacheControl: cacheControl,
	})

	return err
}
