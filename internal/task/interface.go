package task

import "context"

// UseCase defines the business logic interface for the task domain.
// Methods taking args receive the argument text of one parsed command.
type UseCase interface {
	// Load replaces the in-memory list with the persisted one. On failure the
	// session continues with an empty list and the error is returned for display.
	Load(ctx context.Context) (LoadOutput, error)

	// Save writes the whole list to the backing store.
	Save(ctx context.Context) error

	AddTodo(ctx context.Context, args string) (AddOutput, error)
	AddDeadline(ctx context.Context, args string) (AddOutput, error)
	AddEvent(ctx context.Context, args string) (AddOutput, error)

	List(ctx context.Context) ListOutput

	Mark(ctx context.Context, args string) (MarkOutput, error)
	Unmark(ctx context.Context, args string) (MarkOutput, error)
	Delete(ctx context.Context, args string) (DeleteOutput, error)

	FindByDate(ctx context.Context, args string) (FindByDateOutput, error)
	FindByKeyword(ctx context.Context, args string) FindByKeywordOutput

	// Count is the current number of tasks.
	Count() int
}
