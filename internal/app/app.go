package app

import (
	"context"
	"fmt"

	"github.com/abdulachik/quoteprep/internal/config"
	"github.com/abdulachik/quoteprep/internal/db"
	"github.com/abdulachik/quoteprep/internal/tagger"
)

// App holds the dependencies of the commands that talk to the store and
// the OpenAI API.
type App struct {
	Config *config.Config
	Store  *db.Store
	Tagger *tagger.Tagger
}

// Options tune how the tagger is wired.
type Options struct {
	Binary   bool
	UseCache bool
}

// New opens and migrates the store and wires the tagger.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := tagger.NewClient(tagger.ClientConfig{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		MaxTokens:   cfg.TagMaxTokens,
		Temperature: cfg.TagTemperature,
		MaxRetries:  cfg.TagMaxRetries,
		Timeout:     cfg.TagTimeout,
	})

	t := tagger.New(tagger.Config{
		Client:            client,
		Store:             store,
		RequestsPerMinute: cfg.TagRequestsPerMinute,
		Binary:            opts.Binary,
		UseCache:          opts.UseCache,
	})

	return &App{
		Config: cfg,
		Store:  store,
		Tagger: t,
	}, nil
}

// OpenStore connects to the configured database and runs migrations.
func OpenStore(ctx context.Context, cfg *config.Config) (*db.Store, error) {
	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if _, err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
