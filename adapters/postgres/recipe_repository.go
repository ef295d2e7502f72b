package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"goscrub/domain/cleaning"
	"goscrub/domain/core"
	apperrors "goscrub/internal/errors"
	"goscrub/ports"
)

// RecipeRepositoryImpl implements RecipeRepository for PostgreSQL
type RecipeRepositoryImpl struct {
	db *sqlx.DB
}

// NewRecipeRepository creates a new PostgreSQL recipe repository
func NewRecipeRepository(db *sqlx.DB) ports.RecipeRepository {
	return &RecipeRepositoryImpl{db: db}
}

// Connect opens a PostgreSQL connection and ensures the recipes table
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, apperrors.DatabaseError("could not connect to postgres").WithCause(err)
	}
	if _, err := db.Exec(recipeSchema); err != nil {
		db.Close()
		return nil, apperrors.DatabaseError("could not ensure recipes table").WithCause(err)
	}
	return db, nil
}

const recipeSchema = `
CREATE TABLE IF NOT EXISTS cleaning_recipes (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	actions JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Create persists a recipe with its action list as JSON
func (r *RecipeRepositoryImpl) Create(ctx context.Context, recipe *cleaning.Recipe) error {
	actionsJSON, err := json.Marshal(recipe.Actions)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cleaning_recipes (id, name, actions, created_at)
		VALUES ($1, $2, $3, $4)
	`, recipe.ID.String(), recipe.Name, actionsJSON, recipe.CreatedAt)
	return err
}

// GetByID retrieves one recipe
func (r *RecipeRepositoryImpl) GetByID(ctx context.Context, id core.RecipeID) (*cleaning.Recipe, error) {
	var row struct {
		ID        string         `db:"id"`
		Name      string         `db:"name"`
		Actions   []byte         `db:"actions"`
		CreatedAt core.Timestamp `db:"created_at"`
	}
	err := r.db.GetContext(ctx, &row, `
		SELECT id, name, actions, created_at
		FROM cleaning_recipes
		WHERE id = $1
	`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}

	recipe := &cleaning.Recipe{
		ID:        core.RecipeID(row.ID),
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
	if err := json.Unmarshal(row.Actions, &recipe.Actions); err != nil {
		return nil, err
	}
	return recipe, nil
}

// List returns saved recipes, newest first
func (r *RecipeRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*cleaning.Recipe, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, actions, created_at
		FROM cleaning_recipes
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*cleaning.Recipe
	for rows.Next() {
		var (
			recipe      cleaning.Recipe
			id          string
			actionsJSON []byte
		)
		if err := rows.Scan(&id, &recipe.Name, &actionsJSON, &recipe.CreatedAt); err != nil {
			return nil, err
		}
		recipe.ID = core.RecipeID(id)
		if err := json.Unmarshal(actionsJSON, &recipe.Actions); err != nil {
			return nil, err
		}
		recipes = append(recipes, &recipe)
	}
	return recipes, rows.Err()
}

// Delete removes a recipe
func (r *RecipeRepositoryImpl) Delete(ctx context.Context, id core.RecipeID) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM cleaning_recipes WHERE id = $1
	`, id.String())
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return core.ErrRecipeNotFound
	}
	return nil
}
