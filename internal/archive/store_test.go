package archive

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestOpen tests opening and creating the archive database.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database file and directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "archive")
		store, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer func() { _ = store.Close() }()

		if _, err := os.Stat(store.Path()); err != nil {
			t.Errorf("expected database file to exist: %v", err)
		}
	})

	t.Run("fails when database missing and creation disabled", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("reopens existing database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		saved, err := store.SaveRender(context.Background(), "Report", "html", "<html></html>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("unexpected error on close: %v", err)
		}

		reopened, err := Open(dir, Options{CreateIfNotExists: false, EnableWAL: true})
		if err != nil {
			t.Fatalf("unexpected error on reopen: %v", err)
		}
		defer func() { _ = reopened.Close() }()

		got, err := reopened.GetRender(context.Background(), saved.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Content != "<html></html>" {
			t.Error("expected content to survive reopen")
		}
	})
}

// TestSaveRender tests storing rendered documents.
func TestSaveRender(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and hash", func(t *testing.T) {
		t.Parallel()

		store := mustOpen(t)

		saved, err := store.SaveRender(context.Background(), "Quarterly", "html", "<html>body</html>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if saved.ID == "" {
			t.Error("expected an assigned ID")
		}
		if saved.Size != int64(len("<html>body</html>")) {
			t.Errorf("expected size %d, got %d", len("<html>body</html>"), saved.Size)
		}
		if len(saved.SHA256) != 64 {
			t.Errorf("expected 64-char hex hash, got %q", saved.SHA256)
		}
		if saved.CreatedAt.IsZero() {
			t.Error("expected a creation time")
		}
	})

	t.Run("identical content yields identical hash", func(t *testing.T) {
		t.Parallel()

		store := mustOpen(t)
		ctx := context.Background()

		first, err := store.SaveRender(ctx, "A", "json", `{"kind":"report"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := store.SaveRender(ctx, "A", "json", `{"kind":"report"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.ID == second.ID {
			t.Error("expected distinct IDs for separate saves")
		}
		if first.SHA256 != second.SHA256 {
			t.Error("expected identical hash for identical content")
		}
	})
}

// TestGetRender tests retrieving stored documents.
func TestGetRender(t *testing.T) {
	t.Parallel()

	t.Run("round-trips content", func(t *testing.T) {
		t.Parallel()

		store := mustOpen(t)
		ctx := context.Background()

		doc := "# Quarterly\n\nbody with unicode: ★\n"
		saved, err := store.SaveRender(ctx, "Quarterly", "markdown", doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := store.GetRender(ctx, saved.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.Content != doc {
			t.Error("expected content round-trip")
		}
		if got.Title != "Quarterly" || got.Format != "markdown" {
			t.Error("expected metadata round-trip")
		}
	})

	t.Run("returns ErrRenderNotFound for unknown id", func(t *testing.T) {
		t.Parallel()

		store := mustOpen(t)

		_, err := store.GetRender(context.Background(), "no-such-id")
		if !errors.Is(err, ErrRenderNotFound) {
			t.Errorf("expected ErrRenderNotFound, got %v", err)
		}
	})
}

// TestListRenders tests listing stored documents.
func TestListRenders(t *testing.T) {
	t.Parallel()

	t.Run("lists newest first without content", func(t *testing.T) {
		t.Parallel()

		store := mustOpen(t)
		ctx := context.Background()

		for _, title := range []string{"first", "second", "third"} {
			if _, err := store.SaveRender(ctx, title, "html", "<html>"+title+"</html>"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		renders, err := store.ListRenders(ctx, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(renders) != 3 {
			t.Fatalf("expected 3 renders, got %d", len(renders))
		}
		for _, r := range renders {
			if r.Content != "" {
				t.Error("expected listing without content")
			}
			if r.Size == 0 {
				t.Error("expected size metadata in listing")
			}
		}
	})

	t.Run("honors limit", func(t *testing.T) {
		t.Parallel()

		store := mustOpen(t)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			if _, err := store.SaveRender(ctx, "r", "json", strings.Repeat("x", i+1)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		renders, err := store.ListRenders(ctx, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(renders) != 2 {
			t.Errorf("expected 2 renders, got %d", len(renders))
		}
	})

	t.Run("empty archive lists nothing", func(t *testing.T) {
		t.Parallel()

		store := mustOpen(t)

		renders, err := store.ListRenders(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(renders) != 0 {
			t.Errorf("expected empty listing, got %d entries", len(renders))
		}
	})
}

// TestDeleteRender tests removing stored documents.
func TestDeleteRender(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing render", func(t *testing.T) {
		t.Parallel()

		store := mustOpen(t)
		ctx := context.Background()

		saved, err := store.SaveRender(ctx, "gone", "html", "<html></html>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := store.DeleteRender(ctx, saved.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := store.GetRender(ctx, saved.ID); !errors.Is(err, ErrRenderNotFound) {
			t.Errorf("expected ErrRenderNotFound after delete, got %v", err)
		}
	})

	t.Run("returns ErrRenderNotFound for unknown id", func(t *testing.T) {
		t.Parallel()

		store := mustOpen(t)

		err := store.DeleteRender(context.Background(), "no-such-id")
		if !errors.Is(err, ErrRenderNotFound) {
			t.Errorf("expected ErrRenderNotFound, got %v", err)
		}
	})
}

// mustOpen opens a store in a test temp directory and registers cleanup.
func mustOpen(t *testing.T) *Store {
	t.Helper()

	store, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}
