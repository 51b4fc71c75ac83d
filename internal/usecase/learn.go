package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vibe-english-platform/vocabcli/internal/api"
	"github.com/vibe-english-platform/vocabcli/internal/entity"
	"github.com/vibe-english-platform/vocabcli/internal/history"
	"github.com/vibe-english-platform/vocabcli/internal/notify"
)

// Step is the position inside the learn flow.
type Step int

const (
	StepSearch Step = iota + 1
	StepMeaning
	StepCard
)

// wordGateway is the slice of the API client the learn flow uses.
type wordGateway interface {
	LookupMeanings(ctx context.Context, word string) (*entity.Word, error)
	LookupEnhanced(ctx context.Context, word string) (*entity.Word, error)
	GenerateCard(ctx context.Context, req api.GenerateCardRequest) (*entity.LearningCard, error)
	SaveCard(ctx context.Context, collectionID string, card entity.LearningCard) (*entity.CollectionCard, error)
	NotifyWordLearned(ctx context.Context, word string) error
	Profile(ctx context.Context) (*entity.User, error)
	Authenticated() bool
}

// LearnFlow drives search -> meaning selection -> card display. One instance
// per session; it holds the last lookup and generated card in memory only,
// discarded on the next search.
type LearnFlow struct {
	gw       wordGateway
	notifier *notify.Notifier
	recents  *history.Store
	logger   logrus.FieldLogger
	guestCap int

	mu         sync.Mutex
	step       Step
	word       *entity.Word
	meaningIdx int
	card       *entity.LearningCard
	generating bool

	syncWG sync.WaitGroup
}

// NewLearnFlow wires the flow. recents may be nil (history disabled); the
// guest cap only matters while unauthenticated.
func NewLearnFlow(gw wordGateway, notifier *notify.Notifier, recents *history.Store, guestCap int, logger logrus.FieldLogger) *LearnFlow {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LearnFlow{
		gw:       gw,
		notifier: notifier,
		recents:  recents,
		logger:   logger,
		guestCap: guestCap,
		step:     StepSearch,
	}
}

// Step returns the current flow position.
func (f *LearnFlow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Word returns the current lookup result, nil before the first search.
func (f *LearnFlow) Word() *entity.Word {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.word
}

// Card returns the generated card once the flow reaches the card step.
func (f *LearnFlow) Card() *entity.LearningCard {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.card
}

// GuestCapReached reports whether the anonymous-lookup nudge should fire.
// Client-side only; the server enforces the real quota.
func (f *LearnFlow) GuestCapReached() bool {
	if f.gw.Authenticated() || f.recents == nil || f.guestCap <= 0 {
		return false
	}
	n, err := f.recents.GuestLookups()
	if err != nil {
		f.logger.WithError(err).Warn("read guest lookup counter")
		return false
	}
	return n >= f.guestCap
}

// Search runs an enhanced lookup, degrading to plain meanings when the AI
// quota is exhausted. Any outcome discards the previous lookup and card. A
// result whose meaning is already resolved (a single sense) skips the
// selection step.
func (f *LearnFlow) Search(ctx context.Context, term string) (*entity.Word, error) {
	word, err := f.gw.LookupEnhanced(ctx, term)
	if errors.Is(err, entity.ErrQuotaExceeded) {
		f.logger.WithField("term", term).Info("enhanced lookup quota exhausted, degrading to meanings")
		word, err = f.gw.LookupMeanings(ctx, term)
	}
	f.recordLookup(term, err == nil)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.card = nil
	if err != nil {
		f.word = nil
		f.step = StepSearch
		if errors.Is(err, entity.ErrWordNotFound) {
			return nil, entity.ErrWordNotFound
		}
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	f.word = word
	f.meaningIdx = -1
	f.step = StepMeaning
	if len(word.Meanings) == 1 {
		f.meaningIdx = 0
	}
	return word, nil
}

// MeaningResolved reports whether the search already pinned a single sense,
// letting the caller jump straight to card generation.
func (f *LearnFlow) MeaningResolved() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.word != nil && f.meaningIdx >= 0
}

// SelectMeaning picks a sense and generates the learning card. While a
// generation call is in flight further submissions fail fast with
// entity.ErrGenerationInFlight. On failure the flow stays at the selection
// step and an error notification is raised; on success it advances to the
// card step.
func (f *LearnFlow) SelectMeaning(ctx context.Context, index int) (*entity.LearningCard, error) {
	f.mu.Lock()
	if f.word == nil {
		f.mu.Unlock()
		return nil, fmt.Errorf("no active lookup")
	}
	if index < 0 || index >= len(f.word.Meanings) {
		f.mu.Unlock()
		return nil, fmt.Errorf("meaning index %d out of range", index)
	}
	if f.generating {
		f.mu.Unlock()
		return nil, entity.ErrGenerationInFlight
	}
	f.generating = true
	f.meaningIdx = index
	req := api.GenerateCardRequest{Word: f.word.Text, Meaning: f.word.Meanings[index]}
	f.mu.Unlock()

	card, err := f.gw.GenerateCard(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.generating = false
	if err != nil {
		f.step = StepMeaning
		if f.notifier != nil {
			f.notifier.Show("Could not generate the card. Please try again.", notify.VariantError)
		}
		return nil, err
	}
	f.card = card
	f.step = StepCard
	return card, nil
}

// Save stores the generated card into a collection, then fires the
// best-effort learned-word sync in the background.
func (f *LearnFlow) Save(ctx context.Context, collectionID string) (*entity.CollectionCard, error) {
	f.mu.Lock()
	card := f.card
	f.mu.Unlock()
	if card == nil {
		return nil, fmt.Errorf("no card to save")
	}

	saved, err := f.gw.SaveCard(ctx, collectionID, *card)
	if err != nil {
		return nil, err
	}
	if f.notifier != nil {
		f.notifier.Show(fmt.Sprintf("Saved %q to your collection.", card.Word), notify.VariantSuccess)
	}
	f.syncLearned(card.Word)
	return saved, nil
}

// Reset returns the flow to the search step, dropping lookup and card state.
func (f *LearnFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = StepSearch
	f.word = nil
	f.card = nil
	f.meaningIdx = -1
}

// Wait blocks until pending background syncs finish. Called on shutdown and
// by tests.
func (f *LearnFlow) Wait() {
	f.syncWG.Wait()
}

// syncLearned notifies the backend of a learned word and refreshes the
// profile. Best-effort by contract: failures are logged, never surfaced.
func (f *LearnFlow) syncLearned(word string) {
	f.syncWG.Add(1)
	go func() {
		defer f.syncWG.Done()
		ctx := context.Background()
		if err := f.gw.NotifyWordLearned(ctx, word); err != nil {
			f.logger.WithError(err).WithField("word", word).Warn("learned-word sync failed")
			return
		}
		if _, err := f.gw.Profile(ctx); err != nil {
			f.logger.WithError(err).Warn("profile refresh after learned word failed")
		}
	}()
}

func (f *LearnFlow) recordLookup(term string, found bool) {
	if f.recents == nil {
		return
	}
	if err := f.recents.RecordLookup(term, found); err != nil {
		f.logger.WithError(err).Warn("record lookup history")
	}
	if !f.gw.Authenticated() {
		if _, err := f.recents.IncrementGuestLookups(); err != nil {
			f.logger.WithError(err).Warn("bump guest lookup counter")
		}
	}
}
