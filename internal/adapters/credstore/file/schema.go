package file

import (
	"fmt"

	"github.com/hugokent/staffctl/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int              `toml:"version"`
	Credential credentialSchema `toml:"credential"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported credentials schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type credentialSchema struct {
	Token        string `toml:"token"`
	RefreshToken string `toml:"refresh_token,omitempty"`
	Role         string `toml:"role"`
	SubjectID    string `toml:"subject_id,omitempty"`
	DisplayName  string `toml:"display_name,omitempty"`
}

func toSchema(cred domain.Credential) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		Credential: credentialSchema{
			Token:        cred.Token,
			RefreshToken: cred.RefreshToken,
			Role:         string(cred.Role),
			SubjectID:    cred.SubjectID,
			DisplayName:  cred.DisplayName,
		},
	}
}

func fromSchema(file fileSchema) domain.Credential {
	return domain.Credential{
		Token:        file.Credential.Token,
		RefreshToken: file.Credential.RefreshToken,
		Role:         domain.Role(file.Credential.Role),
		SubjectID:    file.Credential.SubjectID,
		DisplayName:  file.Credential.DisplayName,
	}
}
