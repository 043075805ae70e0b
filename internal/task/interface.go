package task

import "context"

// UseCase is the task logic shared by every front end.
type UseCase interface {
	// Create validates raw input and appends the task to the store.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// List loads every stored task and classifies it against input.Today.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Export renders the listed tasks as csv, json or pdf.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
