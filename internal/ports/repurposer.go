package ports

import (
	"context"

	"github.com/contentply/contentply/internal/domain"
)

// Repurposer turns source content into per-platform variants
type Repurposer interface {
	Repurpose(ctx context.Context, content string, isURL bool) (*domain.RepurposeResult, error)
}

// EndpointSource provides the webhook configuration, read on every call
type EndpointSource interface {
	DirectAPIKey(ctx context.Context) (string, error)
	WebhookURL(ctx context.Context) (string, error)
}

// IdentitySource provides the opaque per-install token sent with each request
type IdentitySource interface {
	IdentityToken(ctx context.Context) (string, error)
}
