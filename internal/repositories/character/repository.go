// Package character provides persistence for finished character records
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/dg-generator/internal/repositories/character Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character and, when it belongs to a batch, appends
	// it to the batch index.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a character and its batch index entry
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByBatch returns a batch's characters in generation order.
	// Expired or deleted members are skipped.
	// Returns errors.InvalidArgument for empty batch IDs
	// Returns errors.Internal for storage failures
	ListByBatch(ctx context.Context, input ListByBatchInput) (*ListByBatchOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *deltagreen.Character

	// TTL expires the record; zero keeps it forever
	TTL time.Duration
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *deltagreen.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *deltagreen.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByBatchInput defines the input for listing a batch
type ListByBatchInput struct {
	BatchID string
}

// ListByBatchOutput defines the output for listing a batch
type ListByBatchOutput struct {
	Characters []*deltagreen.Character
}
