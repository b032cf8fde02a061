package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidProviderTransactionID = errors.New("invalid provider transaction id")

// ReconcileResult describes how the canonical payment row was written.
type ReconcileResult struct {
	Payment     entities.Payment
	Inserted    bool
	TypeDropped bool
}

// PaymentReconciler persists a confirmed payment as exactly one row per
// provider transaction id.
//
// Write order is update, then insert. An insert that loses the race to a
// concurrent writer (ErrUniqueViolation) falls back to update. A write the
// store rejects for an unknown attribution type is retried once with the
// type nulled.
type PaymentReconciler struct {
	repo    interfaces.IPaymentRepository
	metrics interfaces.IReconciliationMetrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewPaymentReconciler(repo interfaces.IPaymentRepository, metrics interfaces.IReconciliationMetrics, logger *zap.Logger) *PaymentReconciler {
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentReconciler{repo: repo, metrics: metrics, logger: logger, now: time.Now}
}

func (r *PaymentReconciler) Reconcile(ctx context.Context, p entities.Payment) (ReconcileResult, error) {
	p.ProviderTransactionID = strings.TrimSpace(p.ProviderTransactionID)
	if p.ProviderTransactionID == "" {
		return ReconcileResult{}, ErrInvalidProviderTransactionID
	}
	if p.Status == "" {
		p.Status = entities.PaymentStatusPaid
	}

	res, err := r.upsert(ctx, p)
	if err != nil && errors.Is(err, interfaces.ErrConstraintViolation) && p.Type != "" {
		r.logger.Warn("[payment][reconciler] type rejected by store; retrying with null type",
			zap.String("provider_transaction_id", p.ProviderTransactionID),
			zap.String("type", string(p.Type)),
		)
		r.metrics.TypeConstraintFallback()
		p.Type = ""
		res, err = r.upsert(ctx, p)
		res.TypeDropped = true
	}
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("reconcile payment %s: %w", p.ProviderTransactionID, err)
	}

	r.logger.Info("[payment][reconciler] payment reconciled",
		zap.String("provider_transaction_id", p.ProviderTransactionID),
		zap.String("payment_id", res.Payment.ID),
		zap.Bool("inserted", res.Inserted),
		zap.Bool("type_dropped", res.TypeDropped),
	)
	return res, nil
}

func (r *PaymentReconciler) upsert(ctx context.Context, p entities.Payment) (ReconcileResult, error) {
	updated, found, err := r.repo.UpdateByProviderTransactionID(ctx, p)
	if err != nil {
		return ReconcileResult{}, err
	}
	if found {
		return ReconcileResult{Payment: updated}, nil
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date.IsZero() {
		p.Date = r.now().UTC()
	}
	created, err := r.repo.Insert(ctx, p)
	if err == nil {
		return ReconcileResult{Payment: created, Inserted: true}, nil
	}
	if !errors.Is(err, interfaces.ErrUniqueViolation) {
		return ReconcileResult{}, err
	}

	// Another delivery inserted the row between our update and insert.
	r.logger.Info("[payment][reconciler] insert lost race; updating",
		zap.String("provider_transaction_id", p.ProviderTransactionID))
	updated, found, err = r.repo.UpdateByProviderTransactionID(ctx, p)
	if err != nil {
		return ReconcileResult{}, err
	}
	if !found {
		return ReconcileResult{}, fmt.Errorf("payment row missing after unique violation")
	}
	return ReconcileResult{Payment: updated}, nil
}
