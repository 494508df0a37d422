// Package storage 提供答辩材料（评审 PPT 等）的对象存储访问，
// 前端通过预签名 URL 直传到 S3 兼容存储。
package storage

import (
	"context"
	"fmt"

	cfg "capstone-panel-system/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DocStore 答辩材料存储
type DocStore struct {
	Endpoint     string
	BaseURL      string
	Bucket       string
	Region       string
	Prefix       string
	UsePathStyle bool

	accessKey string
	secretKey string
	s3Client  *s3.Client
}

var store *DocStore

// Init 从配置构建全局 DocStore（不立即建立连接，S3 客户端懒加载）
func Init() {
	c := cfg.Get().S3
	store = &DocStore{
		Endpoint:     c.Endpoint,
		BaseURL:      c.BaseURL,
		Bucket:       c.Bucket,
		Region:       c.Region,
		Prefix:       c.Prefix,
		UsePathStyle: c.UsePathStyle,
		accessKey:    c.AccessKey,
		secretKey:    c.SecretAccessKey,
	}
}

// Get 获取全局 DocStore 实例
func Get() *DocStore {
	if store == nil {
		Init()
	}
	return store
}

// InitS3 初始化 S3 客户端
func (ds *DocStore) InitS3(ctx context.Context) error {
	region := ds.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(ds.accessKey, ds.secretKey, ""),
		),
	)
	if err != nil {
		return fmt.Errorf("加载 S3 配置失败: %w", err)
	}

	ds.s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if ds.Endpoint != "" {
			o.BaseEndpoint = aws.String(ds.Endpoint)
		}
		o.UsePathStyle = ds.UsePathStyle
	})
	return nil
}
