package repository

import "context"

// Repository is the persistence contract for tasks. It is append-only.
type Repository interface {
	// Append writes one validated task as a new record, creating the store on first use.
	Append(ctx context.Context, opt AppendOptions) error

	// LoadAll returns every record in store order. A missing store is an empty result.
	LoadAll(ctx context.Context) (LoadAllResult, error)
}
