package interfaces

import (
	"context"
	"ipfiling/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote with row-level policies.
//
// Every method receives the acting identity and evaluates the entities
// quote policies against the row's current status. Denied operations are
// not errors: writes report zero rows affected and reads return the zero
// value (or an empty slice).
type IQuoteRepository interface {
	Insert(ctx context.Context, actor entities.Actor, q entities.Quote) (int64, error)
	Get(ctx context.Context, actor entities.Actor, id string) (entities.Quote, error)
	ListByUser(ctx context.Context, actor entities.Actor, userID string) ([]entities.Quote, error)
	Update(ctx context.Context, actor entities.Actor, id string, patch entities.QuotePatch) (int64, error)
	Delete(ctx context.Context, actor entities.Actor, id string) (int64, error)
	Finalize(ctx context.Context, actor entities.Actor, id string) (int64, error)
}

// IQuoteItemRepository abstracts persistence for QuoteItem. Access follows
// the parent quote's status at the time of each operation.
type IQuoteItemRepository interface {
	Insert(ctx context.Context, actor entities.Actor, item entities.QuoteItem) (int64, error)
	Update(ctx context.Context, actor entities.Actor, item entities.QuoteItem) (int64, error)
	Delete(ctx context.Context, actor entities.Actor, quoteID, itemID string) (int64, error)
	ListByQuote(ctx context.Context, actor entities.Actor, quoteID string) ([]entities.QuoteItem, error)
}

// IQuoteHistory exposes the system read used by order fan-out.
type IQuoteHistory interface {
	LatestByUser(ctx context.Context, userID string) (entities.Quote, error)
}
