package app

import (
	"github.com/sirupsen/logrus"

	"github.com/vibe-english-platform/vocabcli/internal/api"
	"github.com/vibe-english-platform/vocabcli/internal/history"
	"github.com/vibe-english-platform/vocabcli/internal/infrastructure/config"
	"github.com/vibe-english-platform/vocabcli/internal/notify"
	"github.com/vibe-english-platform/vocabcli/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Client      *api.Client
	Notifier    *notify.Notifier
	History     *history.Store
	Learn       *usecase.LearnFlow
	Collections *usecase.CollectionBrowser
	Navigator   *usecase.Navigator
}

// NewReviewSession builds a fresh session; review sessions are per-run, not
// container-scoped.
func (c *Container) NewReviewSession() *usecase.ReviewSession {
	return usecase.NewReviewSession(c.Client)
}
