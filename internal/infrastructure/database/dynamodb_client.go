package database

import (
	"context"
	"os"

	"mecanica_workflow/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Config carries the DynamoDB connection settings for the workflow tables.
// The zero-ish defaults target dynamodb-local, which accepts any static
// credentials but still requires the SDK to present some.
type Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// ConfigFromEnv reads the connection settings:
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConfigFromEnv() Config {
	return Config{
		Region:    getenvDefault("AWS_REGION", "us-east-1"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
		AccessKey: getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
	}
}

// Load resolves the settings into an aws.Config, pinning the endpoint when
// one is configured so local runs never reach out to AWS.
func (c Config) Load(ctx context.Context) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
	}

	if c.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: c.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// ConnectDynamoDB builds the client the workflow repositories share. The
// service cannot run without its store, so a config failure exits.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := ConfigFromEnv().Load(context.Background())
	if err != nil {
		logger.Error("failed to load dynamodb config", "err", err)
		os.Exit(1)
	}
	return dynamodb.NewFromConfig(cfg)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
