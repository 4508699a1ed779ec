package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/fractiz/internal/exercise"
	"github.com/abhisek/fractiz/internal/ontology"
	"github.com/abhisek/fractiz/internal/store"
	"github.com/abhisek/fractiz/internal/tutor"
)

// knowledgeBasePath returns the configured knowledge base, defaulting to
// fractions_its.owl next to the binary.
func knowledgeBasePath() string {
	if cfg.KnowledgeBase.Path != "" {
		return cfg.KnowledgeBase.Path
	}
	return ontology.DefaultPath()
}

// loadTutor loads the catalog. A load failure is logged and turned into
// an empty tutor that shows the error, so the app still starts.
func loadTutor() *tutor.Tutor {
	path := knowledgeBasePath()
	catalog, skipped, err := exercise.Load(path)
	if err != nil {
		appLog.Error("load knowledge base", zap.String("path", path), zap.Error(err))
		return tutor.New(catalog, tutor.WithKnowledgeBase(path, ontology.Message(path, err)))
	}
	for _, s := range skipped {
		appLog.Warn("exercise skipped", zap.String("exercise", s.Name), zap.Error(s.Reason))
	}
	appLog.Info("knowledge base loaded",
		zap.String("path", path),
		zap.Int("exercises", catalog.Len()),
		zap.Int("skipped", len(skipped)))
	return tutor.New(catalog, tutor.WithKnowledgeBase(path, ""))
}

// openStore opens the event store at the configured path.
func openStore() (*store.Store, error) {
	dbPath, err := store.ResolvePath(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	appLog.Debug("store opened", zap.String("path", dbPath))
	return st, nil
}

// openEvents returns the event log for serve and play. With the store
// disabled, or when it cannot be opened, events are discarded.
func openEvents() (store.EventRepo, func()) {
	if !cfg.Store.Enabled {
		return store.NopRepo{}, func() {}
	}
	st, err := openStore()
	if err != nil {
		appLog.Warn("event log unavailable, answers will not be recorded", zap.Error(err))
		return store.NopRepo{}, func() {}
	}
	return st.EventRepo(), func() { _ = st.Close() }
}
