package credentials

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// AWSSecretsResolver resolves sm:// references through AWS Secrets Manager.
type AWSSecretsResolver struct {
	client *secretsmanager.Client
}

func NewAWSSecretsResolver(ctx context.Context) (*AWSSecretsResolver, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &AWSSecretsResolver{client: secretsmanager.NewFromConfig(cfg)}, nil
}

func (r *AWSSecretsResolver) Resolve(ctx context.Context, ref string) (string, error) {
	secretID := strings.TrimPrefix(ref, referenceScheme)
	out, err := r.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("fetching secret %q: %w", secretID, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secret %q has no string value", secretID)
	}
	return *out.SecretString, nil
}
