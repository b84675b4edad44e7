package service

import (
	"context"

	"reviewhub/internal/domain/entity"
)

// TokenRefresher renews OAuth access tokens.
type TokenRefresher interface {
	// CanRefresh reports whether cred can be renewed by this refresher.
	CanRefresh(cred *entity.PlatformCredential) bool

	// Refresh exchanges the refresh token and returns a copy of cred carrying the new tokens.
	Refresh(ctx context.Context, cred *entity.PlatformCredential) (*entity.PlatformCredential, error)
}

// TokenCipher seals credential tokens before they are stored.
type TokenCipher interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}
