package usecase

import (
	"context"

	"reviewhub/internal/domain/entity"
)

// CredentialResolver selects the stored credential that authorizes calls for a
// location on one platform.
type CredentialResolver interface {
	// Resolve returns a credential that is valid now. It fails with
	// domainerrors.ErrCredentialNotFound, ErrCredentialInactive, ErrCredentialExpired
	// or ErrCredentialAmbiguous, and never talks to the platform except to refresh
	// an expiring Google token.
	Resolve(ctx context.Context, loc *entity.Location, platform entity.Platform) (*entity.PlatformCredential, error)
}
