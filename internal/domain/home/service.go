package home

import (
	"context"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/auth"
)

type HomeService interface {
	Widgets(ctx context.Context, identity auth.Identity) (WidgetsResponse, error)
}
