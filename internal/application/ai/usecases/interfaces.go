package usecases

import (
	"context"
	"encoding/json"
)

// ModelClient is the slice of the chat completions client the generation
// use cases need. Responses are raw JSON validated against the draft schemas
// before anything is charged or persisted.
type ModelClient interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error)
	CompleteJSONWithImage(ctx context.Context, systemPrompt, userPrompt, image string) (json.RawMessage, error)
}

// ContentFetcher retrieves the readable text of a web page for extraction.
type ContentFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
