package cleaning

import (
	"goscrub/domain/core"
)

// Recipe is a named, reusable action list. Saving a recipe captures the
// queue's serialized specs, not dataset state; replaying one proposes its
// actions against whatever dataset is loaded.
type Recipe struct {
	ID        core.RecipeID  `json:"id"`
	Name      string         `json:"name"`
	Actions   []ActionSpec   `json:"actions"`
	CreatedAt core.Timestamp `json:"created_at"`
}

// NewRecipe creates a recipe from queued actions
func NewRecipe(name string, actions []Action) *Recipe {
	specs := make([]ActionSpec, len(actions))
	for i, a := range actions {
		specs[i] = ToSpec(a)
	}
	return &Recipe{
		ID:        core.RecipeID(core.NewID()),
		Name:      name,
		Actions:   specs,
		CreatedAt: core.Now(),
	}
}
