package travellog_test

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dalemusser/wandernext/internal/app/store/document"
	"github.com/dalemusser/wandernext/internal/app/store/travellog"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *travellog.Store {
	t.Helper()
	slot := document.NewFileSlot(filepath.Join(t.TempDir(), "wandernext.json"))
	return travellog.New(document.New(slot, zap.NewNop()), zap.NewNop())
}

func TestToggleBookmark_AddThenRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	on, err := store.ToggleBookmark(ctx, "acc_1", "lst_2")
	if err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	if !on {
		t.Error("expected listing to be bookmarked after first toggle")
	}

	got, err := store.Bookmarks(ctx, "acc_1")
	if err != nil {
		t.Fatalf("Bookmarks failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"lst_2"}) {
		t.Errorf("Bookmarks: got %v, want [lst_2]", got)
	}

	on, err = store.ToggleBookmark(ctx, "acc_1", "lst_2")
	if err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	if on {
		t.Error("expected listing to be unbookmarked after second toggle")
	}
}

func TestToggleBookmark_DoubleToggleRestoresOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"lst_1", "lst_2", "lst_3"} {
		if _, err := store.ToggleBookmark(ctx, "acc_1", id); err != nil {
			t.Fatalf("ToggleBookmark(%s) failed: %v", id, err)
		}
	}

	// Toggle the middle entry off and back on.
	if _, err := store.ToggleBookmark(ctx, "acc_1", "lst_2"); err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	mid, err := store.Bookmarks(ctx, "acc_1")
	if err != nil {
		t.Fatalf("Bookmarks failed: %v", err)
	}
	if !reflect.DeepEqual(mid, []string{"lst_1", "lst_3"}) {
		t.Errorf("after removal: got %v, want [lst_1 lst_3]", mid)
	}

	if _, err := store.ToggleBookmark(ctx, "acc_1", "lst_2"); err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	got, err := store.Bookmarks(ctx, "acc_1")
	if err != nil {
		t.Fatalf("Bookmarks failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"lst_1", "lst_3", "lst_2"}) {
		t.Errorf("after re-add: got %v, want [lst_1 lst_3 lst_2]", got)
	}
}

func TestToggleBookmark_NoDuplicates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.ToggleBookmark(ctx, "acc_1", "lst_1"); err != nil {
			t.Fatalf("ToggleBookmark failed: %v", err)
		}
	}

	got, err := store.Bookmarks(ctx, "acc_1")
	if err != nil {
		t.Fatalf("Bookmarks failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Bookmarks: got %v, want a single entry", got)
	}
}

func TestAddEntry_AppendOnlyNeverDeduplicates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := store.AddEntry(ctx, "acc_1", "lst_1", "Goa"); err != nil {
			t.Fatalf("AddEntry failed: %v", err)
		}
	}

	entries, err := store.Entries(ctx, "acc_1")
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Entries: got %d, want 2 identical entries", len(entries))
	}
	for _, e := range entries {
		if e.ListingID != "lst_1" || e.Destination != "Goa" {
			t.Errorf("entry: got %+v", e)
		}
		if e.AddedAt.IsZero() {
			t.Error("expected entry timestamp to be set")
		}
	}
}

func TestAddEntry_BlankDestinationDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.AddEntry(ctx, "acc_1", "lst_1", ""); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	entries, err := store.Entries(ctx, "acc_1")
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if entries[0].Destination != "General" {
		t.Errorf("Destination: got %q, want %q", entries[0].Destination, "General")
	}
}
