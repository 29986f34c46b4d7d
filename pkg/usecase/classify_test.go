package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareos/pkg/domain/interfaces"
	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/taxonomy"
	"github.com/secmon-lab/briareos/pkg/domain/types"
	"github.com/secmon-lab/briareos/pkg/repository/memory"
	"github.com/secmon-lab/briareos/pkg/service/detect"
	"github.com/secmon-lab/briareos/pkg/usecase"
)

func newUseCases(t *testing.T) (*usecase.UseCases, interfaces.SessionStore) {
	t.Helper()
	tax, err := taxonomy.New()
	gt.NoError(t, err)
	store := memory.New()
	return usecase.New(store, detect.New(tax)), store
}

func TestValidateMessage(t *testing.T) {
	cases := []struct {
		name    string
		message string
		wantErr error
	}{
		{"valid", "Bonjour, j'ai une question", nil},
		{"empty", "", usecase.ErrEmptyMessage},
		{"whitespace only", "   \t\n", usecase.ErrEmptyMessage},
		{"single rune", "a", usecase.ErrMessageTooShort},
		{"single rune padded", "  é  ", usecase.ErrMessageTooShort},
		{"two runes pass", "ça", nil},
		{"too long", strings.Repeat("a", 1001), usecase.ErrMessageTooLong},
		{"exactly max passes", strings.Repeat("a", 1000), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := usecase.ValidateMessage(tc.message)
			if tc.wantErr == nil {
				gt.NoError(t, err)
			} else {
				gt.Bool(t, errors.Is(err, tc.wantErr)).True()
			}
		})
	}
}

func TestClassifyPaymentConversation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCases(t)

	result, err := uc.Classify(ctx, "s", "Je n'ai pas été payé depuis 120 jours")
	gt.NoError(t, err)
	gt.Value(t, result.Category).Equal(types.CategoryPaymentTracking)
	gt.Value(t, result.Agent).Equal(types.AgentPayment)
	gt.Value(t, result.Priority).Equal(types.PriorityHigh)
	gt.Bool(t, result.Escalate).True()
	gt.Value(t, result.EscalationType).Equal(types.EscalationGeneral)

	payment, ok := result.ContextData[model.PaymentContextKey].(*model.PaymentContext)
	gt.Bool(t, ok).True()
	gt.Value(t, payment.TotalDays).Equal(120)
}

func TestClassifyPaymentUnderThreshold(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCases(t)

	result, err := uc.Classify(ctx, "s", "Je n'ai pas reçu mon paiement depuis 90 jours")
	gt.NoError(t, err)
	gt.Value(t, result.Category).Equal(types.CategoryPaymentTracking)
	gt.Bool(t, result.Escalate).False()
}

func TestClassifyPaymentContextCarriesOver(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCases(t)

	_, err := uc.Classify(ctx, "s", "Je n'ai pas été payé depuis 4 mois")
	gt.NoError(t, err)

	// No duration in the second message: the recorded context decides
	result, err := uc.Classify(ctx, "s", "Toujours aucun paiement de votre part")
	gt.NoError(t, err)
	gt.Value(t, result.Category).Equal(types.CategoryPaymentTracking)
	gt.Bool(t, result.Escalate).True()

	payment, ok := result.ContextData[model.PaymentContextKey].(*model.PaymentContext)
	gt.Bool(t, ok).True()
	gt.Value(t, payment.TotalDays).Equal(120)
}

func TestClassifyAmbassadorConversation(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCases(t)

	result, err := uc.Classify(ctx, "s", "Je veux devenir ambassadeur")
	gt.NoError(t, err)
	gt.Value(t, result.Category).Equal(types.CategoryAmbassadorApply)
	gt.Value(t, result.Agent).Equal(types.AgentAmbassador)
	gt.Value(t, result.Profile).Equal(types.ProfileAmbassador)
	gt.Bool(t, result.Escalate).False()

	// Practical follow-up question resolves from context
	result, err = uc.Classify(ctx, "s", "Et comment je commence ?")
	gt.NoError(t, err)
	gt.Value(t, result.Category).Equal(types.CategoryAmbassadorProcess)
	gt.Value(t, result.Agent).Equal(types.AgentAmbassador)
	// The detected profile sticks to the session
	gt.Value(t, result.Profile).Equal(types.ProfileAmbassador)

	record, err := store.GetOrCreate(ctx, "s")
	gt.NoError(t, err)
	gt.Value(t, record.Profile).Equal(types.ProfileAmbassador)
	gt.Value(t, record.MessageCount).Equal(2)
}

func TestClassifyCourseConversation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCases(t)

	result, err := uc.Classify(ctx, "s", "Quelles sont vos formations ?")
	gt.NoError(t, err)
	gt.Value(t, result.Category).Equal(types.CategoryCourseCatalog)
	gt.Value(t, result.Agent).Equal(types.AgentLearner)

	result, err = uc.Classify(ctx, "s", "Je suis intéressé par la formation marketing")
	gt.NoError(t, err)
	gt.Value(t, result.Category).Equal(types.CategoryCourseSelected)
	gt.Value(t, result.Agent).Equal(types.AgentLearner)
}

func TestClassifyAggression(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCases(t)

	result, err := uc.Classify(ctx, "s", "Vous êtes vraiment nuls, c'est une honte")
	gt.NoError(t, err)
	gt.Value(t, result.Category).Equal(types.CategoryAggressiveBehavior)
	gt.Value(t, result.Agent).Equal(types.AgentQuality)
	gt.Value(t, result.Priority).Equal(types.PriorityCritical)
	gt.Bool(t, result.Escalate).True()
	gt.Value(t, result.EscalationType).Equal(types.EscalationQuality)

	record, err := store.GetOrCreate(ctx, "s")
	gt.NoError(t, err)
	gt.Value(t, record.Status).Equal(types.SessionStatusEscalated)
	gt.Value(t, record.EscalationCount).Equal(1)
}

func TestClassifySequenceViolationDegrades(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCases(t)

	_, err := uc.Classify(ctx, "s", "Bonjour, qui êtes-vous ?")
	gt.NoError(t, err)

	// "inscription" wants the course catalog first; out of sequence it
	// degrades to general instead
	result, err := uc.Classify(ctx, "s", "Je veux une inscription")
	gt.NoError(t, err)
	gt.Value(t, result.Category).Equal(types.CategoryGeneral)
	gt.Value(t, result.Agent).Equal(types.AgentGeneral)
	gt.Bool(t, result.Escalate).False()
}

func TestClassifyInvalidMessage(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCases(t)

	_, err := uc.Classify(ctx, "s", "")
	gt.Bool(t, errors.Is(err, usecase.ErrEmptyMessage)).True()

	// Rejected messages must not create a session
	stats, err := store.Stats(ctx)
	gt.NoError(t, err)
	gt.Value(t, stats.TotalSessions).Equal(0)
}

// failingStore errors on the first read of the pipeline. The remaining
// methods are never reached in this test.
type failingStore struct {
	interfaces.SessionStore
}

func (s *failingStore) Context(ctx context.Context, id model.SessionID) (*model.SessionContext, error) {
	return nil, errors.New("store is down")
}

func TestClassifyFallsBackOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	tax, err := taxonomy.New()
	gt.NoError(t, err)
	uc := usecase.New(&failingStore{}, detect.New(tax))

	result, err := uc.Classify(ctx, "s", "Je n'ai pas reçu mon paiement")
	gt.NoError(t, err)
	gt.Value(t, result.Category).Equal(types.CategoryGeneral)
	gt.Value(t, result.Agent).Equal(types.AgentGeneral)
	gt.Bool(t, result.Escalate).False()
	gt.Value(t, result.Priority).Equal(types.PriorityLow)
}

func TestSessionOperations(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCases(t)

	_, err := uc.Classify(ctx, "s", "Je veux devenir ambassadeur")
	gt.NoError(t, err)

	blob, err := uc.ExportSession(ctx, "s")
	gt.NoError(t, err)
	gt.Array(t, blob.Messages).Length(1)
	gt.Value(t, blob.Messages[0].Category).Equal(types.CategoryAmbassadorApply)

	gt.NoError(t, uc.ClearSession(ctx, "s"))
	gt.Bool(t, errors.Is(uc.ClearSession(ctx, "s"), usecase.ErrSessionNotFound)).True()

	gt.NoError(t, uc.ImportSession(ctx, "restored", blob))
	restored, err := uc.ExportSession(ctx, "restored")
	gt.NoError(t, err)
	gt.Value(t, restored.Session.ID).Equal(model.SessionID("restored"))
	gt.Array(t, restored.Messages).Length(1)

	gt.Error(t, uc.ImportSession(ctx, "bad", nil))
	_, err = uc.ExportSession(ctx, "missing")
	gt.Bool(t, errors.Is(err, usecase.ErrSessionNotFound)).True()
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCases(t)

	removed, err := uc.Sweep(ctx)
	gt.NoError(t, err)
	gt.Value(t, removed).Equal(0)
}
