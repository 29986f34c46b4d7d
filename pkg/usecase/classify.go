package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/types"
	"github.com/secmon-lab/briareos/pkg/utils/errutil"
	"github.com/secmon-lab/briareos/pkg/utils/logging"
)

// Message validation bounds. The lower bound is measured on the trimmed
// message in runes, not bytes.
const (
	MinMessageLen = 2
	MaxMessageLen = 1000
)

// ValidateMessage checks the raw message against the accepted bounds
func ValidateMessage(message string) error {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return goerr.Wrap(ErrEmptyMessage, "message validation failed")
	}
	if utf8.RuneCountInString(trimmed) < MinMessageLen {
		return goerr.Wrap(ErrMessageTooShort, "message validation failed",
			goerr.V("min", MinMessageLen))
	}
	if utf8.RuneCountInString(message) > MaxMessageLen {
		return goerr.Wrap(ErrMessageTooLong, "message validation failed",
			goerr.V("max", MaxMessageLen), goerr.V("length", utf8.RuneCountInString(message)))
	}
	return nil
}

// Classify runs the full pipeline for one user message: load the
// session context, resolve the category (follow-up rules first, then
// the keyword priority scan), enforce sequence constraints, infer
// profile and financing, decide escalation and persist everything back
// to the session.
//
// Invalid input is rejected with an error. Any internal failure past
// validation degrades to the safe fallback bundle instead: the caller
// always gets a routable result for a well-formed message.
func (uc *UseCases) Classify(ctx context.Context, sessionID model.SessionID, message string) (result *model.Result, err error) {
	if err := ValidateMessage(message); err != nil {
		return nil, err
	}

	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logging.From(ctx).Error("classification panicked, returning fallback",
				"session_id", sessionID, "panic", r)
			result = model.FallbackResult(sessionID)
			result.ProcessingTime = time.Since(startTime)
			err = nil
		}
	}()

	sc, err := uc.store.Context(ctx, sessionID)
	if err != nil {
		errutil.Handle(ctx, err, "failed to load session context, returning fallback")
		return uc.fallback(sessionID, startTime), nil
	}

	category, matched := uc.engine.FollowUp(message, sc)
	if !matched {
		category = uc.engine.PrimaryCategory(message)
	}

	// A category arriving out of sequence degrades to general rather
	// than producing a reply the conversation cannot support.
	if !uc.engine.ValidateSequence(category, sc.LastCategory) {
		logging.From(ctx).Info("category out of sequence, degrading to general",
			"session_id", sessionID,
			"category", category,
			"previous", sc.LastCategory)
		category = types.CategoryGeneral
	}

	agent := uc.engine.Taxonomy().Agent(category)

	profile := uc.engine.Profile(message)
	if profile == types.ProfileUnknown {
		profile = sc.Session.Profile
	}

	financing := uc.engine.Financing(message)

	payment := uc.resolvePayment(ctx, sessionID, sc, category, message, financing)

	escalate := uc.engine.ShouldEscalate(category, payment)

	result = &model.Result{
		SessionID: sessionID,
		Category:  category,
		Agent:     agent,
		Escalate:  escalate,
		Priority:  uc.engine.Taxonomy().Tier(category),
		Profile:   profile,
		Financing: financing,
	}
	if escalate {
		result.EscalationType = uc.engine.EscalationType(category)
	}
	if payment != nil {
		result.ContextData = map[string]any{model.PaymentContextKey: payment}
	}

	uc.persist(ctx, sessionID, message, result, profile)

	result.ProcessingTime = time.Since(startTime)
	return result, nil
}

// resolvePayment builds the payment context for payment conversations.
// Durations mentioned in the current message win; otherwise the context
// recorded earlier in the session carries over.
func (uc *UseCases) resolvePayment(ctx context.Context, sessionID model.SessionID, sc *model.SessionContext,
	category types.CategoryID, message string, financing types.FinancingType) *model.PaymentContext {

	if category != types.CategoryPaymentTracking && category != types.CategoryPaymentOverdue {
		return nil
	}

	durations := uc.engine.ExtractDurations(message)
	if len(durations) == 0 {
		if prior, ok := sc.ContextData[model.PaymentContextKey].(*model.PaymentContext); ok {
			return prior
		}
		if category == types.CategoryPaymentOverdue {
			return nil
		}
	}

	payment := &model.PaymentContext{
		Financing:  financing,
		Durations:  durations,
		TotalDays:  durations.TotalDays(),
		RecordedAt: time.Now(),
	}
	if err := uc.store.SetContextData(ctx, sessionID, model.PaymentContextKey, payment); err != nil {
		errutil.Handle(ctx, err, "failed to persist payment context")
	}
	return payment
}

// persist writes the classification outcome back to the session. Write
// failures are logged, not propagated: the classification already
// happened and the caller still gets the result.
func (uc *UseCases) persist(ctx context.Context, sessionID model.SessionID, message string, result *model.Result, profile types.Profile) {
	entry := model.MessageEntry{
		Role:      types.RoleUser,
		Content:   message,
		Timestamp: time.Now(),
		Category:  result.Category,
		Agent:     result.Agent,
	}
	if err := uc.store.AppendMessage(ctx, sessionID, entry); err != nil {
		errutil.Handle(ctx, err, "failed to append message")
	}
	if err := uc.store.RecordCategory(ctx, sessionID, result.Category); err != nil {
		errutil.Handle(ctx, err, "failed to record category")
	}
	if err := uc.store.RecordAgent(ctx, sessionID, result.Agent); err != nil {
		errutil.Handle(ctx, err, "failed to record agent")
	}
	if profile != types.ProfileUnknown {
		if err := uc.store.SetProfile(ctx, sessionID, profile); err != nil {
			errutil.Handle(ctx, err, "failed to set profile")
		}
	}
	if result.Escalate {
		if err := uc.store.MarkEscalated(ctx, sessionID); err != nil {
			errutil.Handle(ctx, err, "failed to mark session escalated")
		}
	}
}

func (uc *UseCases) fallback(sessionID model.SessionID, startTime time.Time) *model.Result {
	result := model.FallbackResult(sessionID)
	result.ProcessingTime = time.Since(startTime)
	return result
}
