package entity

import "strings"

// DifficultyTier buckets a word by learner level.
type DifficultyTier string

const (
	TierUnspecified  DifficultyTier = ""
	TierBeginner     DifficultyTier = "beginner"
	TierIntermediate DifficultyTier = "intermediate"
	TierAdvanced     DifficultyTier = "advanced"
)

// ParseDifficultyTier converts an arbitrary string into a supported tier value.
func ParseDifficultyTier(s string) DifficultyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return TierBeginner
	case "intermediate":
		return TierIntermediate
	case "advanced":
		return TierAdvanced
	default:
		return TierUnspecified
	}
}

// Meaning is one sense of a word as returned by the dictionary backend.
type Meaning struct {
	PartOfSpeech string `json:"part_of_speech"`
	Definition   string `json:"definition"`
	Example      string `json:"example,omitempty"`
}

// Syllable is one unit of a pronunciation breakdown.
type Syllable struct {
	Text     string `json:"text"`
	IPA      string `json:"ipa,omitempty"`
	Stressed bool   `json:"stressed,omitempty"`
}

// Difficulty pairs a tier with the backend's numeric score (0-100).
type Difficulty struct {
	Tier  DifficultyTier `json:"tier"`
	Score int            `json:"score"`
}

// TieredExamples groups example sentences by learner level.
type TieredExamples struct {
	Beginner     []string `json:"beginner,omitempty"`
	Intermediate []string `json:"intermediate,omitempty"`
	Advanced     []string `json:"advanced,omitempty"`
}

// WordAnalysis is the optional AI-generated block attached to an enhanced
// lookup. All content is produced server-side; the client only renders it.
type WordAnalysis struct {
	Difficulty   Difficulty     `json:"difficulty"`
	Syllables    []Syllable     `json:"syllables,omitempty"`
	Synonyms     []string       `json:"synonyms,omitempty"`
	Antonyms     []string       `json:"antonyms,omitempty"`
	Related      []string       `json:"related,omitempty"`
	UsageContext string         `json:"usage_context,omitempty"`
	Examples     TieredExamples `json:"examples"`
}

// Word is the result of a dictionary lookup. It lives only until the next
// search; nothing here is persisted client-side beyond the lookup cache.
type Word struct {
	Text     string        `json:"word"`
	Phonetic string        `json:"phonetic,omitempty"`
	Meanings []Meaning     `json:"meanings"`
	Analysis *WordAnalysis `json:"analysis,omitempty"`
}

// Validate rejects lookup payloads that would leave the learn flow without a
// renderable word. Called at the decode boundary so malformed server
// responses fail fast instead of propagating half-empty records.
func (w *Word) Validate() error {
	if strings.TrimSpace(w.Text) == "" {
		return ErrInvalidWordText
	}
	if len(w.Meanings) == 0 {
		return ErrWordNotFound
	}
	for _, m := range w.Meanings {
		if strings.TrimSpace(m.Definition) == "" {
			return ErrInvalidWordText
		}
	}
	return nil
}

// HasAnalysis reports whether the enhanced AI block is present.
func (w *Word) HasAnalysis() bool {
	return w.Analysis != nil
}
