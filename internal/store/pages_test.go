package store

import (
	"context"
	"errors"
	"testing"

	"pagehelm/internal/pageconfig"
	"pagehelm/models"
)

func TestCreatePageAssignsFreshIDs(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.SeedHomePage(ctx); err != nil {
		t.Fatalf("seed home: %v", err)
	}

	seen := map[int64]bool{models.HomePageID: true}
	var last int64 = models.HomePageID
	for i := 0; i < 3; i++ {
		page, err := st.CreatePage(ctx, "")
		if err != nil {
			t.Fatalf("create page: %v", err)
		}
		if page.PageID == models.HomePageID {
			t.Fatal("new page must never reuse the home page id")
		}
		if seen[page.PageID] {
			t.Fatalf("id %d assigned twice", page.PageID)
		}
		if page.PageID <= last {
			t.Fatalf("ids must be monotonic, got %d after %d", page.PageID, last)
		}
		seen[page.PageID] = true
		last = page.PageID

		if page.Title != defaultPageTitle {
			t.Fatalf("title = %q, want default", page.Title)
		}
		if page.Status != models.PageStatusDraft {
			t.Fatalf("status = %q, want draft", page.Status)
		}
		cfg, err := PageConfigOf(page)
		if err != nil {
			t.Fatalf("decode config: %v", err)
		}
		if !cfg.Hero.Enabled {
			t.Fatal("new page must carry the default document")
		}
	}
}

func TestCreatePageCapped(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.SeedHomePage(ctx); err != nil {
		t.Fatalf("seed home: %v", err)
	}
	if _, err := st.CreatePageCapped(ctx, "Second", 2); err != nil {
		t.Fatalf("create under cap: %v", err)
	}

	if _, err := st.CreatePageCapped(ctx, "Third", 2); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("create at cap = %v, want ErrCapacityExceeded", err)
	}
	count, err := st.CountPages(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("refused create changed the store, count = %d", count)
	}

	// A negative cap disables the check.
	if _, err := st.CreatePageCapped(ctx, "Third", -1); err != nil {
		t.Fatalf("uncapped create: %v", err)
	}
}

func TestPagesAreListedMostRecentFirst(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.SeedHomePage(ctx); err != nil {
		t.Fatalf("seed home: %v", err)
	}
	first, err := st.CreatePage(ctx, "First")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := st.CreatePage(ctx, "Second")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pages, err := st.Pages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if pages[0].PageID != second.PageID || pages[1].PageID != first.PageID {
		t.Fatalf("expected newest first, got %d, %d, %d", pages[0].PageID, pages[1].PageID, pages[2].PageID)
	}
	if pages[2].PageID != models.HomePageID {
		t.Fatal("home page should sort last")
	}
}

func TestDeletePageProtectsHomePage(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.SeedHomePage(ctx); err != nil {
		t.Fatalf("seed home: %v", err)
	}
	page, err := st.CreatePage(ctx, "Disposable")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := st.DeletePage(ctx, models.HomePageID); !errors.Is(err, ErrProtectedEntity) {
		t.Fatalf("deleting home page = %v, want ErrProtectedEntity", err)
	}
	count, err := st.CountPages(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("page count changed by refused delete, got %d", count)
	}

	if err := st.DeletePage(ctx, page.PageID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := st.DeletePage(ctx, page.PageID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}

func TestSetPageStatus(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	page, err := st.CreatePage(ctx, "Launch")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := st.SetPageStatus(ctx, page.PageID, models.PageStatusPublished); err != nil {
		t.Fatalf("publish: %v", err)
	}
	loaded, err := st.Page(ctx, page.PageID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Published() {
		t.Fatal("expected page published")
	}

	if err := st.SetPageStatus(ctx, page.PageID, "archived"); err == nil {
		t.Fatal("expected unknown status to fail")
	}
	if err := st.SetPageStatus(ctx, 9999, models.PageStatusDraft); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing page = %v, want ErrNotFound", err)
	}
}

func TestSavePageReplacesTitleAndConfigAtomically(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	page, err := st.CreatePage(ctx, "Before")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cfg := pageconfig.Default()
	cfg.Hero.Headline = "After headline"
	if err := st.SavePage(ctx, page.PageID, "After", cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := st.Page(ctx, page.PageID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Title != "After" {
		t.Fatalf("title = %q, want After", loaded.Title)
	}
	decoded, err := PageConfigOf(loaded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Hero.Headline != "After headline" {
		t.Fatalf("headline = %q", decoded.Hero.Headline)
	}
	if loaded.LastModified == page.LastModified {
		t.Fatal("expected modification stamp updated")
	}

	if err := st.SavePage(ctx, 9999, "x", cfg); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing page = %v, want ErrNotFound", err)
	}
	if err := st.SavePage(ctx, page.PageID, "  ", cfg); err == nil {
		t.Fatal("expected empty title to fail")
	}
}

func TestPageBySlug(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	home, err := st.SeedHomePage(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	loaded, err := st.PageBySlug(ctx, "helm-pages")
	if err != nil {
		t.Fatalf("slug lookup: %v", err)
	}
	if loaded.PageID != home.PageID {
		t.Fatal("slug lookup returned the wrong page")
	}
	if _, err := st.PageBySlug(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing slug = %v, want ErrNotFound", err)
	}
}

func TestHomePageSeedsOnDemand(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	home, err := st.HomePage(ctx)
	if err != nil {
		t.Fatalf("home: %v", err)
	}
	if home.PageID != models.HomePageID || !home.Published() {
		t.Fatalf("unexpected seeded home page: %+v", home)
	}

	again, err := st.HomePage(ctx)
	if err != nil {
		t.Fatalf("home: %v", err)
	}
	if again.ID != home.ID {
		t.Fatal("second call must reuse the seeded row")
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"New Landing Page":  "new-landing-page",
		"  Trim -- me!  ":   "trim-me",
		"___":               "page",
		"Produto Incrível!": "produto-incr-vel",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
