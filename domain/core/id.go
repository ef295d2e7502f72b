package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	DatasetID ID
	ActionID  ID
	RecipeID  ID
)

// String conversions for domain IDs
func (id DatasetID) String() string { return ID(id).String() }
func (id ActionID) String() string  { return ID(id).String() }
func (id RecipeID) String() string  { return ID(id).String() }

// ParseDatasetID parses a string into DatasetID
func ParseDatasetID(s string) (DatasetID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("dataset ID cannot be empty")
	}
	return DatasetID(s), nil
}

// ParseActionID parses a string into ActionID
func ParseActionID(s string) (ActionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("action ID cannot be empty")
	}
	return ActionID(s), nil
}

// ParseRecipeID parses a string into RecipeID
func ParseRecipeID(s string) (RecipeID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("recipe ID cannot be empty")
	}
	return RecipeID(s), nil
}
