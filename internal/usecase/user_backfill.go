package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrBackfillFailed = errors.New("user backfill failed")

// Backfill outcomes, also used as metric labels.
const (
	BackfillSkipped   = "skipped"
	BackfillNoEmail   = "no_email"
	BackfillNoAccount = "no_account"
	BackfillAssigned  = "assigned"
	BackfillFailed    = "failed"
)

// emailFields is checked in order, first at the top level of the form and
// then under each of emailContainers.
var (
	emailFields     = []string{"email", "userEmail", "contactEmail", "applicantEmail", "ownerEmail", "emailAddress"}
	emailContainers = []string{"applicant", "contact", "owner"}
)

// BackfillResult reports what the backfill did.
type BackfillResult struct {
	Outcome string
	UserID  string
	Email   string
}

// Assigned reports whether the payment now has an owner because of this
// backfill.
func (r BackfillResult) Assigned() bool {
	return r.Outcome == BackfillAssigned
}

// UserBackfill attaches an ownerless payment to an account found through
// the email submitted in the form. Failures leave the payment ownerless.
type UserBackfill struct {
	payments interfaces.IPaymentRepository
	accounts interfaces.IAccountRepository
	metrics  interfaces.IReconciliationMetrics
	logger   *zap.Logger
}

func NewUserBackfill(payments interfaces.IPaymentRepository, accounts interfaces.IAccountRepository, metrics interfaces.IReconciliationMetrics, logger *zap.Logger) *UserBackfill {
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserBackfill{payments: payments, accounts: accounts, metrics: metrics, logger: logger}
}

func (b *UserBackfill) Backfill(ctx context.Context, p entities.Payment, formData map[string]interface{}) (BackfillResult, error) {
	res, err := b.backfill(ctx, p, formData)
	b.metrics.BackfillOutcome(res.Outcome)
	if err != nil {
		b.logger.Warn("[payment][backfill] payment left ownerless",
			zap.String("provider_transaction_id", p.ProviderTransactionID),
			zap.String("email", res.Email),
			zap.Error(err),
		)
		return res, err
	}
	b.logger.Info("[payment][backfill] done",
		zap.String("provider_transaction_id", p.ProviderTransactionID),
		zap.String("outcome", res.Outcome),
		zap.String("user_id", res.UserID),
	)
	return res, nil
}

func (b *UserBackfill) backfill(ctx context.Context, p entities.Payment, formData map[string]interface{}) (BackfillResult, error) {
	if p.HasOwner() {
		return BackfillResult{Outcome: BackfillSkipped, UserID: p.UserID}, nil
	}
	email := ExtractEmail(formData)
	if email == "" {
		return BackfillResult{Outcome: BackfillNoEmail}, nil
	}
	if b.accounts == nil || b.payments == nil {
		return BackfillResult{Outcome: BackfillFailed, Email: email}, fmt.Errorf("%w: stores not configured", ErrBackfillFailed)
	}

	acct, err := b.accounts.FindByEmail(ctx, email)
	if err != nil {
		return BackfillResult{Outcome: BackfillFailed, Email: email}, fmt.Errorf("%w: account lookup: %v", ErrBackfillFailed, err)
	}
	if acct.ID == "" {
		return BackfillResult{Outcome: BackfillNoAccount, Email: email}, nil
	}

	ok, err := b.payments.AssignUser(ctx, p.ProviderTransactionID, acct.ID)
	if err != nil {
		return BackfillResult{Outcome: BackfillFailed, Email: email}, fmt.Errorf("%w: assign user: %v", ErrBackfillFailed, err)
	}
	if !ok {
		// Someone attached an owner first; ours is not authoritative.
		return BackfillResult{Outcome: BackfillSkipped, Email: email}, nil
	}
	return BackfillResult{Outcome: BackfillAssigned, UserID: acct.ID, Email: email}, nil
}

// ExtractEmail returns the first non-empty email-looking candidate field of
// a submitted form, lower-cased.
func ExtractEmail(formData map[string]interface{}) string {
	if v := emailFrom(formData); v != "" {
		return v
	}
	for _, c := range emailContainers {
		nested, ok := formData[c].(map[string]interface{})
		if !ok {
			continue
		}
		if v := emailFrom(nested); v != "" {
			return v
		}
	}
	return ""
}

func emailFrom(m map[string]interface{}) string {
	for _, f := range emailFields {
		s, ok := m[f].(string)
		if !ok {
			continue
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && strings.Contains(s, "@") {
			return s
		}
	}
	return ""
}
