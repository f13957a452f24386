package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// SecretStorage guarda as credenciais produzidas pelo fluxo de autorização
// para as execuções seguintes do relatório.
type SecretStorage interface {
	ListSecrets() (map[string]string, error)
	AddOrUpdateSecrets(secrets map[string]string) error
}

// EnvFileStorage persiste segredos em um arquivo .env, preservando as chaves existentes.
type EnvFileStorage struct {
	Path string
}

func NewEnvFileStorage(path string) *EnvFileStorage {
	return &EnvFileStorage{Path: path}
}

func (s *EnvFileStorage) ListSecrets() (map[string]string, error) {
	secrets, err := godotenv.Read(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("config: error reading secrets from %s: %w", s.Path, err)
	}
	return secrets, nil
}

func (s *EnvFileStorage) AddOrUpdateSecrets(secrets map[string]string) error {
	current, err := s.ListSecrets()
	if err != nil {
		return err
	}

	for name, content := range secrets {
		if content == "" {
			continue
		}
		current[name] = content
	}

	if err := godotenv.Write(current, s.Path); err != nil {
		return fmt.Errorf("config: error writing secrets to %s: %w", s.Path, err)
	}

	if err := os.Chmod(s.Path, 0o600); err != nil {
		logrus.WithError(err).Warn("config: could not restrict permissions of env file")
	}

	logrus.WithFields(logrus.Fields{
		"path":    s.Path,
		"updated": len(secrets),
	}).Info("config: credentials saved")

	return nil
}
