package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/wordlist"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestSaveAndFetchList(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	pairs := []model.WordPair{
		{Word: "dog", Meaning: "개"},
		{Word: "cat", Meaning: "고양이"},
		{Word: "dog", Meaning: "개"},
	}
	if err := st.SaveList(ctx, "animals", pairs); err != nil {
		t.Fatalf("save list: %v", err)
	}
	got, err := st.Fetch(ctx, "animals")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(got))
	}
	for i := range pairs {
		if got[i] != pairs[i] {
			t.Fatalf("pair %d: expected %+v, got %+v", i, pairs[i], got[i])
		}
	}
}

func TestSaveListReplaces(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.SaveList(ctx, "k", []model.WordPair{{Word: "a", Meaning: "1"}, {Word: "b", Meaning: "2"}}); err != nil {
		t.Fatalf("save list: %v", err)
	}
	if err := st.SaveList(ctx, "k", []model.WordPair{{Word: "c", Meaning: "3"}}); err != nil {
		t.Fatalf("save list again: %v", err)
	}
	got, err := st.Fetch(ctx, "k")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 1 || got[0].Word != "c" {
		t.Fatalf("expected replaced list, got %+v", got)
	}
}

func TestKeysSortedNewestFirst(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	for _, key := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		if err := st.SaveList(ctx, key, []model.WordPair{{Word: "w", Meaning: "m"}}); err != nil {
			t.Fatalf("save %s: %v", key, err)
		}
	}
	keys, err := st.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	want := []string{"2024-03-01", "2024-02-01", "2024-01-01"}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, keys)
		}
	}
}

func TestFetchUnknownList(t *testing.T) {
	st := openTestStore(t)
	_, err := st.Fetch(context.Background(), "missing")
	if !errors.Is(err, wordlist.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestDeleteList(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.SaveList(ctx, "k", []model.WordPair{{Word: "a", Meaning: "1"}}); err != nil {
		t.Fatalf("save list: %v", err)
	}
	removed, err := st.DeleteList(ctx, "k")
	if err != nil || !removed {
		t.Fatalf("expected list removed, got %v, %v", removed, err)
	}
	removed, err = st.DeleteList(ctx, "k")
	if err != nil || removed {
		t.Fatalf("expected nothing to remove, got %v, %v", removed, err)
	}
}

func TestReopenKeepsLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.SaveList(context.Background(), "k", []model.WordPair{{Word: "a", Meaning: "1"}}); err != nil {
		t.Fatalf("save list: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()
	keys, err := st.Keys(context.Background())
	if err != nil || len(keys) != 1 {
		t.Fatalf("expected one key after reopen, got %v, %v", keys, err)
	}
}
