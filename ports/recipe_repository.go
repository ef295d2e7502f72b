package ports

import (
	"context"

	"goscrub/domain/cleaning"
	"goscrub/domain/core"
)

// RecipeRepository defines the interface for saved recipe storage
type RecipeRepository interface {
	Create(ctx context.Context, recipe *cleaning.Recipe) error
	GetByID(ctx context.Context, id core.RecipeID) (*cleaning.Recipe, error)
	List(ctx context.Context, limit, offset int) ([]*cleaning.Recipe, error)
	Delete(ctx context.Context, id core.RecipeID) error
}
