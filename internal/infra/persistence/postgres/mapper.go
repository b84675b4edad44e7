package postgres

import (
	"maps"

	"reviewhub/internal/domain/entity"
	"reviewhub/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func jsonMap(m map[string]any) datatypes.JSONMap {
	if len(m) == 0 {
		return datatypes.JSONMap{}
	}

	return datatypes.JSONMap(maps.Clone(m))
}

func toLocationDomain(m *model.LocationModel) *entity.Location {
	return &entity.Location{
		ID:                    m.ID,
		TenantID:              m.TenantID,
		Name:                  m.Name,
		Address:               m.Address,
		Address2:              m.Address2,
		City:                  m.City,
		State:                 m.State,
		PostalCode:            m.PostalCode,
		Country:               m.Country,
		Phone:                 m.Phone,
		Website:               m.Website,
		Latitude:              m.Latitude,
		Longitude:             m.Longitude,
		PrimaryCategory:       m.PrimaryCategory,
		Categories:            []string(m.Categories),
		BusinessHours:         map[string]any(m.BusinessHours),
		Status:                m.Status,
		FacebookPageID:        deref(m.FacebookPageID),
		GooglePlaceID:         deref(m.GooglePlaceID),
		GooglePlayPackageName: deref(m.GooglePlayPackageName),
		YouTubeChannelID:      deref(m.YouTubeChannelID),
		ReviewsSyncedAt:       m.ReviewsSyncedAt,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func fromLocationDomain(l *entity.Location) *model.LocationModel {
	return &model.LocationModel{
		ID:                    l.ID,
		TenantID:              l.TenantID,
		Name:                  l.Name,
		Address:               l.Address,
		Address2:              l.Address2,
		City:                  l.City,
		State:                 l.State,
		PostalCode:            l.PostalCode,
		Country:               l.Country,
		Phone:                 l.Phone,
		Website:               l.Website,
		Latitude:              l.Latitude,
		Longitude:             l.Longitude,
		PrimaryCategory:       l.PrimaryCategory,
		Categories:            datatypes.JSONSlice[string](l.Categories),
		BusinessHours:         jsonMap(l.BusinessHours),
		Status:                l.Status,
		FacebookPageID:        nullable(l.FacebookPageID),
		GooglePlaceID:         nullable(l.GooglePlaceID),
		GooglePlayPackageName: nullable(l.GooglePlayPackageName),
		YouTubeChannelID:      nullable(l.YouTubeChannelID),
		ReviewsSyncedAt:       l.ReviewsSyncedAt,
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
	}
}

// toCredentialDomain converts a row whose tokens have already been opened.
func toCredentialDomain(m *model.PlatformCredentialModel) *entity.PlatformCredential {
	return &entity.PlatformCredential{
		ID:           m.ID,
		TenantID:     m.TenantID,
		Platform:     entity.Platform(m.Platform),
		ExternalID:   deref(m.ExternalID),
		AccessToken:  m.AccessToken,
		RefreshToken: m.RefreshToken,
		TokenType:    m.TokenType,
		ExpiresAt:    m.ExpiresAt,
		Scopes:       []string(m.Scopes),
		Metadata:     entity.CredentialMetadataFromMap(m.Metadata),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromCredentialDomain(c *entity.PlatformCredential) *model.PlatformCredentialModel {
	tokenType := c.TokenType
	if tokenType == "" {
		tokenType = entity.DefaultTokenType
	}

	return &model.PlatformCredentialModel{
		ID:           c.ID,
		TenantID:     c.TenantID,
		Platform:     c.Platform.String(),
		ExternalID:   nullable(c.ExternalID),
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    tokenType,
		ExpiresAt:    c.ExpiresAt,
		Scopes:       datatypes.JSONSlice[string](c.Scopes),
		Metadata:     jsonMap(c.Metadata.ToMap()),
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toListingDomain(m *model.ListingModel) *entity.Listing {
	return &entity.Listing{
		ID:              m.ID,
		LocationID:      m.LocationID,
		Platform:        entity.Platform(m.Platform),
		ExternalID:      deref(m.ExternalID),
		Status:          entity.ListingStatus(m.Status),
		Name:            m.Name,
		Address:         m.Address,
		City:            m.City,
		State:           m.State,
		PostalCode:      m.PostalCode,
		Country:         m.Country,
		Phone:           m.Phone,
		Website:         m.Website,
		Description:     m.Description,
		Categories:      []string(m.Categories),
		BusinessHours:   map[string]any(m.BusinessHours),
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		Attributes:      map[string]any(m.Attributes),
		Discrepancies:   discrepanciesFromMap(m.Discrepancies),
		LastSyncedAt:    m.LastSyncedAt,
		LastPublishedAt: m.LastPublishedAt,
		ErrorMessage:    m.ErrorMessage,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromListingDomain(l *entity.Listing) *model.ListingModel {
	status := l.Status
	if status == "" {
		status = entity.ListingStatusPending
	}

	return &model.ListingModel{
		ID:              l.ID,
		LocationID:      l.LocationID,
		Platform:        l.Platform.String(),
		ExternalID:      nullable(l.ExternalID),
		Status:          string(status),
		Name:            l.Name,
		Address:         l.Address,
		City:            l.City,
		State:           l.State,
		PostalCode:      l.PostalCode,
		Country:         l.Country,
		Phone:           l.Phone,
		Website:         l.Website,
		Description:     l.Description,
		Categories:      datatypes.JSONSlice[string](l.Categories),
		BusinessHours:   jsonMap(l.BusinessHours),
		Latitude:        l.Latitude,
		Longitude:       l.Longitude,
		Attributes:      jsonMap(l.Attributes),
		Discrepancies:   discrepanciesToMap(l.Discrepancies),
		LastSyncedAt:    l.LastSyncedAt,
		LastPublishedAt: l.LastPublishedAt,
		ErrorMessage:    l.ErrorMessage,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func discrepanciesToMap(d entity.Discrepancies) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(d))
	for field, diff := range d {
		out[field] = map[string]any{"local": diff.Local, "platform": diff.Platform}
	}

	return out
}

func discrepanciesFromMap(m datatypes.JSONMap) entity.Discrepancies {
	out := make(entity.Discrepancies, len(m))
	for field, raw := range m {
		pair, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		local, _ := pair["local"].(string)
		remote, _ := pair["platform"].(string)
		out[field] = entity.FieldDiff{Local: local, Platform: remote}
	}

	return out
}

func toReviewDomain(m *model.ReviewModel) *entity.Review {
	review := &entity.Review{
		ID:          m.ID,
		LocationID:  m.LocationID,
		Platform:    entity.Platform(m.Platform),
		ExternalID:  m.ExternalID,
		AuthorName:  m.AuthorName,
		AuthorImage: m.AuthorImage,
		Rating:      m.Rating,
		Content:     m.Content,
		PublishedAt: m.PublishedAt,
		Metadata:    entity.ReviewMetadataFromMap(m.Metadata),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Response != nil {
		review.Response = toReviewResponseDomain(m.Response)
	}

	return review
}

func fromReviewDomain(r *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:          r.ID,
		LocationID:  r.LocationID,
		Platform:    r.Platform.String(),
		ExternalID:  r.ExternalID,
		AuthorName:  r.AuthorName,
		AuthorImage: r.AuthorImage,
		Rating:      r.Rating,
		Content:     r.Content,
		PublishedAt: r.PublishedAt,
		Metadata:    jsonMap(r.Metadata.ToMap()),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toReviewResponseDomain(m *model.ReviewResponseModel) *entity.ReviewResponse {
	return &entity.ReviewResponse{
		ID:              m.ID,
		ReviewID:        m.ReviewID,
		UserID:          m.UserID,
		Content:         m.Content,
		Status:          entity.ResponseStatus(m.Status),
		AIGenerated:     m.AIGenerated,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		RejectionReason: m.RejectionReason,
		PublishedAt:     m.PublishedAt,
		PlatformSynced:  m.PlatformSynced,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromReviewResponseDomain(r *entity.ReviewResponse) *model.ReviewResponseModel {
	return &model.ReviewResponseModel{
		ID:              r.ID,
		ReviewID:        r.ReviewID,
		UserID:          r.UserID,
		Content:         r.Content,
		Status:          string(r.Status),
		AIGenerated:     r.AIGenerated,
		ApprovedBy:      r.ApprovedBy,
		ApprovedAt:      r.ApprovedAt,
		RejectionReason: r.RejectionReason,
		PublishedAt:     r.PublishedAt,
		PlatformSynced:  r.PlatformSynced,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
