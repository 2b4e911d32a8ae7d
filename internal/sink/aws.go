// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package sink

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/developerdao/ddcloud/internal/security"
)

// SecretsManagerClient abstracts the Secrets Manager client for testing.
type SecretsManagerClient interface {
	CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
}

// AWSConfig holds Secrets Manager settings. An empty Region or Profile leaves
// the choice to the default chain (AWS_REGION, AWS_PROFILE, ~/.aws/config).
type AWSConfig struct {
	Region  string
	Profile string
}

// AWS stores keys in AWS Secrets Manager.
type AWS struct {
	cfg    AWSConfig
	client SecretsManagerClient
}

type AWSOption func(*AWS)

// WithAWSConfig sets the adapter configuration.
func WithAWSConfig(cfg AWSConfig) AWSOption {
	return func(a *AWS) {
		a.cfg = cfg
	}
}

// WithSecretsManagerClient injects a custom client.
func WithSecretsManagerClient(c SecretsManagerClient) AWSOption {
	return func(a *AWS) {
		if c != nil {
			a.client = c
		}
	}
}

// NewAWS constructs the Secrets Manager sink. Credentials are resolved
// lazily through the default AWS chain on first use.
func NewAWS(opts ...AWSOption) *AWS {
	a := &AWS{}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

func (a *AWS) Label() string { return "AWS Secrets Manager" }

func (a *AWS) ensureClient(ctx context.Context) error {
	if a.client != nil {
		return nil
	}
	var loadOpts []func(*config.LoadOptions) error
	if a.cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(a.cfg.Region))
	}
	if a.cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(a.cfg.Profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("aws: load config: %w", err)
	}
	a.client = secretsmanager.NewFromConfig(cfg)
	return nil
}

// Store creates a new secret named name holding the raw key.
func (a *AWS) Store(ctx context.Context, name string, secret security.Secret) (Metadata, error) {
	if err := a.ensureClient(ctx); err != nil {
		return Metadata{}, err
	}
	out, err := a.client.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
		Name:         aws.String(name),
		SecretString: aws.String(secret.Reveal()),
		Description:  aws.String(keyDescription),
	})
	if err != nil {
		return Metadata{}, fmt.Errorf("aws: create secret %s: %w", name, err)
	}
	md := Metadata{Name: aws.ToString(out.Name), Identifier: aws.ToString(out.ARN)}
	if md.Name == "" {
		md.Name = "None"
	}
	if md.Identifier == "" {
		md.Identifier = "None"
	}
	return md, nil
}
