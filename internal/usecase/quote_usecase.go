package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrUnauthenticated    = errors.New("missing user identity")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteItem   = errors.New("invalid quote item")
	ErrInvalidQuoteAmount = errors.New("invalid quote amount")
)

const defaultQuoteCurrency = "USD"

// CreateQuoteCommand opens a draft quote. OwnerID is honoured only for the
// privileged actor; customers always own what they create.
type CreateQuoteCommand struct {
	OwnerID         string
	ServiceID       string
	ApplicationType string
	Currency        string
}

// AddQuoteItemCommand describes a new priced line. A nil Amount is derived
// from UnitAmount × Quantity.
type AddQuoteItemCommand struct {
	Key        string
	Label      string
	Unit       string
	Quantity   int
	UnitAmount decimal.Decimal
	Amount     *decimal.Decimal
}

// QuoteItemPatch carries editable item fields; nil fields stay untouched.
type QuoteItemPatch struct {
	Label      *string
	Unit       *string
	Quantity   *int
	UnitAmount *decimal.Decimal
	Amount     *decimal.Decimal
}

// IQuoteUseCase exposes the quote lifecycle.
//
// Denied writes are not errors: they report zero rows affected, whether the
// quote is finalized, belongs to someone else, or does not exist.
type IQuoteUseCase interface {
	Create(ctx context.Context, actor entities.Actor, cmd CreateQuoteCommand) (entities.Quote, int64, error)
	Get(ctx context.Context, actor entities.Actor, id string) (entities.Quote, error)
	List(ctx context.Context, actor entities.Actor, ownerID string) ([]entities.Quote, error)
	Update(ctx context.Context, actor entities.Actor, id string, patch entities.QuotePatch) (int64, error)
	Delete(ctx context.Context, actor entities.Actor, id string) (int64, error)
	Finalize(ctx context.Context, actor entities.Actor, id string) (int64, error)
	AddItem(ctx context.Context, actor entities.Actor, quoteID string, cmd AddQuoteItemCommand) (entities.QuoteItem, int64, error)
	UpdateItem(ctx context.Context, actor entities.Actor, quoteID, itemID string, patch QuoteItemPatch) (int64, error)
	DeleteItem(ctx context.Context, actor entities.Actor, quoteID, itemID string) (int64, error)
	ListItems(ctx context.Context, actor entities.Actor, quoteID string) ([]entities.QuoteItem, error)
}

type QuoteUseCase struct {
	quotes interfaces.IQuoteRepository
	items  interfaces.IQuoteItemRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, items interfaces.IQuoteItemRepository, logger *zap.Logger) *QuoteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteUseCase{quotes: quotes, items: items, logger: logger, now: time.Now}
}

func (u *QuoteUseCase) Create(ctx context.Context, actor entities.Actor, cmd CreateQuoteCommand) (entities.Quote, int64, error) {
	if actor.IsAnonymous() {
		return entities.Quote{}, 0, ErrUnauthenticated
	}
	owner := actor.UserID
	if actor.Privileged && strings.TrimSpace(cmd.OwnerID) != "" {
		owner = strings.TrimSpace(cmd.OwnerID)
	}
	if owner == "" {
		return entities.Quote{}, 0, ErrUnauthenticated
	}
	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = defaultQuoteCurrency
	}

	now := u.now().UTC()
	q := entities.Quote{
		ID:              uuid.NewString(),
		UserID:          owner,
		ServiceID:       strings.TrimSpace(cmd.ServiceID),
		ApplicationType: strings.TrimSpace(cmd.ApplicationType),
		Status:          entities.QuoteStatusDraft,
		Subtotal:        decimal.Zero,
		Currency:        currency,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	n, err := u.quotes.Insert(ctx, actor, q)
	if err != nil {
		return entities.Quote{}, 0, err
	}
	u.logger.Info("[quote][usecase] created", zap.String("quote_id", q.ID), zap.String("user_id", owner), zap.Int64("rows", n))
	return q, n, nil
}

func (u *QuoteUseCase) Get(ctx context.Context, actor entities.Actor, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.Get(ctx, actor, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, actor entities.Actor, ownerID string) ([]entities.Quote, error) {
	if actor.IsAnonymous() {
		return nil, ErrUnauthenticated
	}
	owner := actor.UserID
	if actor.Privileged && strings.TrimSpace(ownerID) != "" {
		owner = strings.TrimSpace(ownerID)
	}
	return u.quotes.ListByUser(ctx, actor, owner)
}

func (u *QuoteUseCase) Update(ctx context.Context, actor entities.Actor, id string, patch entities.QuotePatch) (int64, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrInvalidQuoteID
	}
	if patch.Subtotal != nil && patch.Subtotal.IsNegative() {
		return 0, ErrInvalidQuoteAmount
	}
	if patch.Empty() {
		return 0, nil
	}
	n, err := u.quotes.Update(ctx, actor, id, patch)
	if err != nil {
		return 0, err
	}
	u.logger.Info("[quote][usecase] update", zap.String("quote_id", id), zap.Bool("privileged", actor.Privileged), zap.Int64("rows", n))
	return n, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, actor entities.Actor, id string) (int64, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrInvalidQuoteID
	}
	return u.quotes.Delete(ctx, actor, id)
}

// Finalize moves a draft to finalized. Only the privileged path gets a row
// affected; anyone else gets zero.
func (u *QuoteUseCase) Finalize(ctx context.Context, actor entities.Actor, id string) (int64, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrInvalidQuoteID
	}
	n, err := u.quotes.Finalize(ctx, actor, id)
	if err != nil {
		return 0, err
	}
	u.logger.Info("[quote][usecase] finalize", zap.String("quote_id", id), zap.Bool("privileged", actor.Privileged), zap.Int64("rows", n))
	return n, nil
}

func (u *QuoteUseCase) AddItem(ctx context.Context, actor entities.Actor, quoteID string, cmd AddQuoteItemCommand) (entities.QuoteItem, int64, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuoteItem{}, 0, ErrInvalidQuoteID
	}
	if strings.TrimSpace(cmd.Key) == "" || cmd.Quantity < 0 || cmd.UnitAmount.IsNegative() {
		return entities.QuoteItem{}, 0, ErrInvalidQuoteItem
	}
	if cmd.Quantity == 0 {
		cmd.Quantity = 1
	}

	now := u.now().UTC()
	item := entities.QuoteItem{
		ID:         uuid.NewString(),
		QuoteID:    quoteID,
		Key:        strings.TrimSpace(cmd.Key),
		Label:      strings.TrimSpace(cmd.Label),
		Unit:       strings.TrimSpace(cmd.Unit),
		Quantity:   cmd.Quantity,
		UnitAmount: cmd.UnitAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if cmd.Amount != nil {
		item.Amount = *cmd.Amount
	} else {
		item.Amount = lineAmount(item)
	}
	if item.Amount.IsNegative() {
		return entities.QuoteItem{}, 0, ErrInvalidQuoteItem
	}

	n, err := u.items.Insert(ctx, actor, item)
	if err != nil {
		return entities.QuoteItem{}, 0, err
	}
	if n > 0 {
		u.refreshSubtotal(ctx, actor, quoteID)
	}
	return item, n, nil
}

func (u *QuoteUseCase) UpdateItem(ctx context.Context, actor entities.Actor, quoteID, itemID string, patch QuoteItemPatch) (int64, error) {
	quoteID, itemID = strings.TrimSpace(quoteID), strings.TrimSpace(itemID)
	if quoteID == "" || itemID == "" {
		return 0, ErrInvalidQuoteID
	}
	items, err := u.items.ListByQuote(ctx, actor, quoteID)
	if err != nil {
		return 0, err
	}
	var item entities.QuoteItem
	for _, it := range items {
		if it.ID == itemID {
			item = it
			break
		}
	}
	if item.ID == "" {
		return 0, nil
	}

	recompute := false
	if patch.Label != nil {
		item.Label = strings.TrimSpace(*patch.Label)
	}
	if patch.Unit != nil {
		item.Unit = strings.TrimSpace(*patch.Unit)
	}
	if patch.Quantity != nil {
		if *patch.Quantity <= 0 {
			return 0, ErrInvalidQuoteItem
		}
		item.Quantity, recompute = *patch.Quantity, true
	}
	if patch.UnitAmount != nil {
		if patch.UnitAmount.IsNegative() {
			return 0, ErrInvalidQuoteItem
		}
		item.UnitAmount, recompute = *patch.UnitAmount, true
	}
	switch {
	case patch.Amount != nil:
		if patch.Amount.IsNegative() {
			return 0, ErrInvalidQuoteItem
		}
		item.Amount = *patch.Amount
	case recompute:
		item.Amount = lineAmount(item)
	}
	item.UpdatedAt = u.now().UTC()

	n, err := u.items.Update(ctx, actor, item)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.refreshSubtotal(ctx, actor, quoteID)
	}
	return n, nil
}

func (u *QuoteUseCase) DeleteItem(ctx context.Context, actor entities.Actor, quoteID, itemID string) (int64, error) {
	quoteID, itemID = strings.TrimSpace(quoteID), strings.TrimSpace(itemID)
	if quoteID == "" || itemID == "" {
		return 0, ErrInvalidQuoteID
	}
	n, err := u.items.Delete(ctx, actor, quoteID, itemID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.refreshSubtotal(ctx, actor, quoteID)
	}
	return n, nil
}

func (u *QuoteUseCase) ListItems(ctx context.Context, actor entities.Actor, quoteID string) ([]entities.QuoteItem, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.items.ListByQuote(ctx, actor, quoteID)
}

// refreshSubtotal recomputes the quote subtotal from its items. It goes
// through the same policies as any write, so it is a no-op once finalized.
func (u *QuoteUseCase) refreshSubtotal(ctx context.Context, actor entities.Actor, quoteID string) {
	items, err := u.items.ListByQuote(ctx, actor, quoteID)
	if err != nil {
		u.logger.Warn("[quote][usecase] subtotal refresh skipped", zap.String("quote_id", quoteID), zap.Error(err))
		return
	}
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}
	if _, err := u.quotes.Update(ctx, actor, quoteID, entities.QuotePatch{Subtotal: &subtotal}); err != nil {
		u.logger.Warn("[quote][usecase] subtotal update failed", zap.String("quote_id", quoteID), zap.Error(err))
	}
}

func lineAmount(it entities.QuoteItem) decimal.Decimal {
	return it.UnitAmount.Mul(decimal.NewFromInt(int64(it.Quantity)))
}
