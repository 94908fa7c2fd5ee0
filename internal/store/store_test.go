package store_test

import (
	"context"
	"errors"
	"testing"

	"overdub/internal/logging"
	"overdub/internal/store"
	"overdub/internal/testsupport"
)

func TestLoadInitialEmptyDatabase(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	payload, ok, err := st.LoadInitial(context.Background())
	if err != nil {
		t.Fatalf("LoadInitial failed: %v", err)
	}
	if ok {
		t.Fatalf("expected no snapshot on first run, got %d bytes", len(payload))
	}
}

func TestReplaceAndLoad(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	first := []byte(`{"albumTitle":"One"}`)
	if err := st.Replace(ctx, first); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	payload, ok, err := st.LoadInitial(ctx)
	if err != nil || !ok {
		t.Fatalf("LoadInitial after write: ok=%v err=%v", ok, err)
	}
	if string(payload) != string(first) {
		t.Fatalf("payload mismatch: %s", payload)
	}

	// A second replace fully supersedes the first.
	second := []byte(`{"albumTitle":"Two"}`)
	if err := st.Replace(ctx, second); err != nil {
		t.Fatalf("second Replace failed: %v", err)
	}
	payload, ok, err = st.LoadInitial(ctx)
	if err != nil || !ok {
		t.Fatalf("LoadInitial after second write: ok=%v err=%v", ok, err)
	}
	if string(payload) != string(second) {
		t.Fatalf("payload not replaced: %s", payload)
	}
}

func TestClear(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := st.Replace(ctx, []byte(`{}`)); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if err := st.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, err := st.LoadInitial(ctx); err != nil || ok {
		t.Fatalf("snapshot survived Clear: ok=%v err=%v", ok, err)
	}
}

func TestSnapshotSurvivesReopen(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	st, err := store.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Replace(ctx, []byte(`{"albumTitle":"Persisted"}`)); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	st = testsupport.MustOpenStore(t, cfg)
	payload, ok, err := st.LoadInitial(ctx)
	if err != nil || !ok {
		t.Fatalf("LoadInitial after reopen: ok=%v err=%v", ok, err)
	}
	if string(payload) != `{"albumTitle":"Persisted"}` {
		t.Fatalf("unexpected payload after reopen: %s", payload)
	}
}

func TestSecondWriterRejected(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_ = testsupport.MustOpenStore(t, cfg)

	if _, err := store.Open(cfg, logging.NewNop()); !errors.Is(err, store.ErrLocked) {
		t.Fatalf("expected ErrLocked for second writer, got %v", err)
	}
}
