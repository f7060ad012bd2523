package ports

import (
	"context"

	"github.com/bnema/cubesign/internal/domain"
)

type ConfigRepository interface {
	Load(ctx context.Context) (domain.Config, error)
	Save(ctx context.Context, cfg domain.Config) error
	// Path returns the backing file location, used for change watching.
	Path() string
}
