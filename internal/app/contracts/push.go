package contracts

import "context"

// PushMessage is one dispatch unit for the push gateway consumer: a batch
// of at most constvars.PushTokenBatchSize tokens sharing one title/body.
type PushMessage struct {
	ID     string   `json:"id"`
	Tokens []string `json:"tokens"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
}

// PushQueue is the fire-and-forget gateway: no delivery confirmation is
// consumed beyond the broker publish confirm.
type PushQueue interface {
	Publish(ctx context.Context, message PushMessage) error
}
