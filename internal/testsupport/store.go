package testsupport

import (
	"testing"

	"gavelmatch/internal/config"
	"gavelmatch/internal/verdicts"
)

// MustOpenStore opens a verdicts.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *verdicts.Store {
	t.Helper()

	store, err := verdicts.Open(cfg)
	if err != nil {
		t.Fatalf("verdicts.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
