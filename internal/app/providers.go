package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vibe-english-platform/vocabcli/internal/api"
	"github.com/vibe-english-platform/vocabcli/internal/cache"
	"github.com/vibe-english-platform/vocabcli/internal/history"
	"github.com/vibe-english-platform/vocabcli/internal/infrastructure/config"
	"github.com/vibe-english-platform/vocabcli/internal/notify"
	"github.com/vibe-english-platform/vocabcli/internal/token"
	"github.com/vibe-english-platform/vocabcli/internal/usecase"
)

func provideLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

func provideTokenStore(cfg *config.Config) token.Store {
	return token.NewFileStore(cfg.Storage.TokenFile, token.DefaultLifetime)
}

func provideWordCache() *cache.WordCache {
	return cache.New(cache.DefaultTTL)
}

// provideHistory opens the local history file. History is best-effort: a
// missing or corrupt file disables the feature instead of failing startup.
func provideHistory(cfg *config.Config, logger *logrus.Logger) (*history.Store, func()) {
	store, err := history.Open(cfg.Storage.HistoryFile)
	if err != nil {
		logger.WithError(err).Warn("lookup history disabled")
		return nil, func() {}
	}
	return store, func() { _ = store.Close() }
}

func provideAPIClient(cfg *config.Config, tokens token.Store, words *cache.WordCache, logger *logrus.Logger) *api.Client {
	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	return api.New(cfg.API.BaseURL, tokens, words,
		api.WithHTTPClient(httpClient),
		api.WithLogger(logger),
	)
}

func provideNotifier() (*notify.Notifier, func()) {
	n := notify.New(notify.DefaultTimeout)
	return n, n.Close
}

func provideLearnFlow(client *api.Client, notifier *notify.Notifier, recents *history.Store, cfg *config.Config, logger *logrus.Logger) (*usecase.LearnFlow, func()) {
	flow := usecase.NewLearnFlow(client, notifier, recents, cfg.Guest.LookupCap, logger)
	return flow, flow.Wait
}

func provideCollectionBrowser(client *api.Client) *usecase.CollectionBrowser {
	return usecase.NewCollectionBrowser(client)
}

func provideNavigator(client *api.Client) *usecase.Navigator {
	return usecase.NewNavigator(client)
}
