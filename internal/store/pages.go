package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pagehelm/internal/pageconfig"
	"pagehelm/models"
)

const defaultPageTitle = "New Landing Page"

// Pages lists every page, most recent first. The home page, carrying the
// lowest id, sorts last, matching the display contract.
func (s *Store) Pages(ctx context.Context) ([]models.Page, error) {
	var pages []models.Page
	if err := s.db.WithContext(ctx).Order("page_id DESC").Find(&pages).Error; err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return pages, nil
}

// CountPages returns the number of pages in the store.
func (s *Store) CountPages(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Page{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return count, nil
}

// Page loads one page by its public id.
func (s *Store) Page(ctx context.Context, id int64) (*models.Page, error) {
	var page models.Page
	err := s.db.WithContext(ctx).Where("page_id = ?", id).First(&page).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &page, nil
}

// PageBySlug loads one page by its URL slug.
func (s *Store) PageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	slug = strings.TrimSpace(slug)
	var page models.Page
	err := s.db.WithContext(ctx).Where("url = ?", "/p/"+slug).First(&page).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &page, nil
}

// HomePage loads the system home page, seeding it on first use so the
// public site always has content to render.
func (s *Store) HomePage(ctx context.Context) (*models.Page, error) {
	page, err := s.Page(ctx, models.HomePageID)
	if err == nil {
		return page, nil
	}
	if err != ErrNotFound {
		return nil, err
	}
	return s.SeedHomePage(ctx)
}

// SeedHomePage creates the protected home page with the default document.
// Calling it when the page already exists is a no-op.
func (s *Store) SeedHomePage(ctx context.Context) (*models.Page, error) {
	config, err := pageconfig.Default().Encode()
	if err != nil {
		return nil, err
	}
	page := &models.Page{
		PageID:       models.HomePageID,
		Title:        "Helm Pages",
		Thumbnail:    "https://picsum.photos/400/250?random=100",
		URL:          "/p/helm-pages",
		Status:       models.PageStatusPublished,
		LastModified: "System",
		Config:       datatypes.JSON(config),
	}
	err = s.db.WithContext(ctx).
		Where("page_id = ?", models.HomePageID).
		FirstOrCreate(page).Error
	if err != nil {
		return nil, fmt.Errorf("seed home page: %w", err)
	}
	return page, nil
}

// CreatePage adds a draft page seeded with the default document. The id is
// monotonic over existing pages and never reuses the home page's id.
func (s *Store) CreatePage(ctx context.Context, title string) (*models.Page, error) {
	return s.createPage(ctx, title, pageconfig.Default(), -1)
}

// CreatePageCapped adds a draft page like CreatePage, refusing with
// ErrCapacityExceeded once the store already holds maxPages pages. A
// negative cap disables the check. The count and the insert share one
// transaction.
func (s *Store) CreatePageCapped(ctx context.Context, title string, maxPages int) (*models.Page, error) {
	return s.createPage(ctx, title, pageconfig.Default(), maxPages)
}

// CreatePageWithConfig adds a draft page carrying the supplied document,
// used for AI-generated pages.
func (s *Store) CreatePageWithConfig(ctx context.Context, title string, cfg pageconfig.PageConfig) (*models.Page, error) {
	return s.createPage(ctx, title, cfg, -1)
}

func (s *Store) createPage(ctx context.Context, title string, cfg pageconfig.PageConfig, maxPages int) (*models.Page, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultPageTitle
	}
	config, err := cfg.Encode()
	if err != nil {
		return nil, err
	}

	slugToken := uuid.NewString()[:8]
	page := &models.Page{
		Title:        title,
		Thumbnail:    "https://picsum.photos/400/250?random=" + slugToken,
		URL:          "/p/" + slugify(title) + "-" + slugToken,
		Status:       models.PageStatusDraft,
		LastModified: "Just now",
		Config:       datatypes.JSON(config),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if maxPages >= 0 {
			var count int64
			if err := tx.Model(&models.Page{}).Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(maxPages) {
				return ErrCapacityExceeded
			}
		}
		id, err := nextPageID(tx)
		if err != nil {
			return err
		}
		page.PageID = id
		return tx.Create(page).Error
	})
	if err != nil {
		if errors.Is(err, ErrCapacityExceeded) {
			return nil, ErrCapacityExceeded
		}
		return nil, fmt.Errorf("create page: %w", err)
	}
	return page, nil
}

func nextPageID(tx *gorm.DB) (int64, error) {
	var maxID int64
	err := tx.Model(&models.Page{}).
		Select("COALESCE(MAX(page_id), ?)", models.HomePageID).
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}

// DeletePage removes a page permanently. The home page is protected and
// cannot be deleted.
func (s *Store) DeletePage(ctx context.Context, id int64) error {
	if id == models.HomePageID {
		return ErrProtectedEntity
	}
	result := s.db.WithContext(ctx).Where("page_id = ?", id).Delete(&models.Page{})
	if result.Error != nil {
		return fmt.Errorf("delete page: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPageStatus switches a page between draft and published. Role gating
// happens in the caller.
func (s *Store) SetPageStatus(ctx context.Context, id int64, status string) error {
	if !models.ValidPageStatus(status) {
		return fmt.Errorf("set page status: unknown status %q", status)
	}
	result := s.db.WithContext(ctx).Model(&models.Page{}).
		Where("page_id = ?", id).
		Updates(map[string]any{
			"status":        status,
			"last_modified": modifiedStamp(),
		})
	if result.Error != nil {
		return fmt.Errorf("set page status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SavePage atomically replaces a page's title and document and stamps the
// modification label. Nothing is applied when the page is missing.
func (s *Store) SavePage(ctx context.Context, id int64, title string, cfg pageconfig.PageConfig) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("save page: title must not be empty")
	}
	config, err := cfg.Encode()
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Model(&models.Page{}).
		Where("page_id = ?", id).
		Updates(map[string]any{
			"title":         title,
			"config":        datatypes.JSON(config),
			"last_modified": modifiedStamp(),
		})
	if result.Error != nil {
		return fmt.Errorf("save page: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PageConfigOf decodes a page's stored document, falling back to defaults
// for a page that has never been edited.
func PageConfigOf(page *models.Page) (pageconfig.PageConfig, error) {
	return pageconfig.Decode([]byte(page.Config))
}

func modifiedStamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04")
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "page"
	}
	return slug
}
