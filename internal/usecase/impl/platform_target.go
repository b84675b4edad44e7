package impl

import (
	"context"

	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"
	"reviewhub/internal/usecase"
)

// errNotLinked is returned when a location has no account on a platform.
var errNotLinked = errors.New("location is not linked to the platform")

// targetResolver turns a location and an adapter into the account the adapter
// must address. It never calls the platform.
type targetResolver struct {
	resolver    usecase.CredentialResolver
	listingRepo repository.ListingRepository
}

func (t *targetResolver) resolve(ctx context.Context, loc *entity.Location, adapter service.PlatformAdapter) (service.Target, error) {
	return t.build(ctx, loc, adapter, true)
}

// resolveReply is resolve for replies. A reply addresses the review's own remote
// object, so a location-bound platform only needs a credential, not the link.
func (t *targetResolver) resolveReply(ctx context.Context, loc *entity.Location, adapter service.PlatformAdapter) (service.Target, error) {
	return t.build(ctx, loc, adapter, false)
}

func (t *targetResolver) build(ctx context.Context, loc *entity.Location, adapter service.PlatformAdapter, requireLink bool) (service.Target, error) {
	target := service.Target{Location: loc, AccountRef: adapter.AccountRef(loc)}

	switch adapter.Binding() {
	case service.BindByKey:
		if target.AccountRef == "" {
			return target, errNotLinked
		}

		return target, nil

	case service.BindByLocation:
		if target.AccountRef == "" && requireLink {
			return target, errNotLinked
		}

	case service.BindByCredential:
		if target.AccountRef == "" {
			ref, err := t.storedAccountRef(ctx, loc, adapter.Platform())
			if err != nil {
				return target, err
			}
			target.AccountRef = ref
		}
	}

	cred, err := t.resolver.Resolve(ctx, loc, adapter.Platform())
	if err != nil {
		return target, err
	}
	target.Credential = cred

	return target, nil
}

// storedAccountRef returns the remote id recorded by a previous listing sync.
func (t *targetResolver) storedAccountRef(ctx context.Context, loc *entity.Location, platform entity.Platform) (string, error) {
	listing, err := t.listingRepo.FindByLocationAndPlatform(ctx, loc.ID, platform)
	if errors.Is(err, repository.ErrListingNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read stored listing")
	}

	return listing.ExternalID, nil
}
