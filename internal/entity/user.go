package entity

import "time"

// Preferences are user-tunable knobs stored server-side.
type Preferences struct {
	DailyGoal      int    `json:"daily_goal"`
	NativeLanguage string `json:"native_language,omitempty"`
	Reminders      bool   `json:"reminders"`
}

// LearningProgress aggregates counters the server maintains per user.
type LearningProgress struct {
	WordsLearned  int        `json:"words_learned"`
	CardsReviewed int        `json:"cards_reviewed"`
	StreakDays    int        `json:"streak_days"`
	LastActiveAt  *time.Time `json:"last_active_at,omitempty"`
}

// User is the authenticated account, loaded on session start via token
// validation and refreshed after mutations.
type User struct {
	ID          string           `json:"id"`
	Email       string           `json:"email"`
	Username    string           `json:"username"`
	Preferences Preferences      `json:"preferences"`
	Progress    LearningProgress `json:"progress"`
	Collections []Collection     `json:"collections,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// DefaultCollection returns the user's default collection, or nil.
func (u *User) DefaultCollection() *Collection {
	for i := range u.Collections {
		if u.Collections[i].Default {
			return &u.Collections[i]
		}
	}
	return nil
}
