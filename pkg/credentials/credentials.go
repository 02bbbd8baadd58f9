package credentials

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

var ErrSecretNotFound = errors.New("secret not found")

// CredentialsManager fetches provider credentials stored as JSON secrets.
type CredentialsManager struct {
	manager *secretsmanager.SecretsManager
}

func NewCredentialsManager(sess *session.Session) *CredentialsManager {
	return &CredentialsManager{
		manager: secretsmanager.New(sess),
	}
}

func (cm *CredentialsManager) GetSecret(secretArn string) (*string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     &secretArn,
		VersionStage: aws.String("AWSCURRENT"),
	}
	out, err := cm.manager.GetSecretValue(input)
	var t *secretsmanager.ResourceNotFoundException
	if errors.As(err, &t) {
		return nil, ErrSecretNotFound
	}
	if err != nil {
		return nil, err
	}
	return out.SecretString, nil
}

// GetJSONSecret unmarshals a JSON secret into v, typically a provider Config.
func (cm *CredentialsManager) GetJSONSecret(secretArn string, v any) error {
	s, err := cm.GetSecret(secretArn)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(*s), v); err != nil {
		return fmt.Errorf("failed to unmarshal secret '%s': %w", secretArn, err)
	}
	return nil
}
