// Package app orchestrates the analysis pipeline: annotations in, composed
// report out, with progress events for the dashboard stream.
package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/metrics"
	"github.com/ayusman/playsight/internal/store"
)

// Progress is one pipeline progress event.
type Progress struct {
	SessionID string `json:"session_id"`
	Stage     string `json:"stage"`
	Percent   int    `json:"percent"`
}

// ProgressFunc receives pipeline progress events.
type ProgressFunc func(Progress)

// Config holds the application dependencies. All collaborators are injected
// explicitly; the app holds no lazily initialized globals.
type Config struct {
	Store    *store.Store
	Provider annotation.Provider
	Metrics  *metrics.Metrics
}

// App runs analysis sessions.
type App struct {
	config Config

	mu        sync.RWMutex
	observers []ProgressFunc
}

// New creates a new App instance with the given configuration. A missing
// provider falls back to the deterministic fixture provider.
func New(config Config) *App {
	if config.Provider == nil {
		log.Println("No annotation provider configured, using fixture provider")
		config.Provider = annotation.NewFixtureProvider()
	}
	return &App{config: config}
}

// OnProgress registers an observer for pipeline progress events.
func (a *App) OnProgress(fn ProgressFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.observers = append(a.observers, fn)
}

func (a *App) notify(p Progress) {
	a.mu.RLock()
	observers := make([]ProgressFunc, len(a.observers))
	copy(observers, a.observers)
	a.mu.RUnlock()
	for _, fn := range observers {
		fn(p)
	}
}

// StartSession creates a pending session for the video and runs the pipeline
// synchronously: annotations are fetched from the provider, analyzed, and the
// composed report persisted. It returns the completed (or failed) session.
func (a *App) StartSession(ctx context.Context, videoURI string) (*store.Session, error) {
	session := &store.Session{
		ID:       uuid.NewString(),
		VideoURI: videoURI,
		Status:   store.StatusPending,
	}
	if err := a.config.Store.Sessions().Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	results, err := a.config.Provider.Annotate(ctx, videoURI)
	if err != nil {
		a.fail(session.ID, err)
		return nil, fmt.Errorf("annotation failed: %w", err)
	}

	if err := a.runPipeline(session.ID, results); err != nil {
		return nil, err
	}
	return a.config.Store.Sessions().GetByID(session.ID)
}

// AnalyzeResults creates a session around an already-annotated payload and
// runs the pipeline over it.
func (a *App) AnalyzeResults(_ context.Context, videoURI string, results *annotation.Results) (*store.Session, error) {
	session := &store.Session{
		ID:       uuid.NewString(),
		VideoURI: videoURI,
		Status:   store.StatusPending,
	}
	if err := a.config.Store.Sessions().Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := a.runPipeline(session.ID, results); err != nil {
		return nil, err
	}
	return a.config.Store.Sessions().GetByID(session.ID)
}

func (a *App) fail(sessionID string, cause error) {
	if a.config.Metrics != nil {
		a.config.Metrics.PipelineFailures.Inc()
	}
	if err := a.config.Store.Sessions().UpdateStatus(sessionID, store.StatusFailed, cause.Error()); err != nil {
		log.Printf("Failed to mark session %s failed: %v", sessionID, err)
	}
}
