package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Page statuses.
const (
	PageStatusDraft     = "draft"
	PageStatusPublished = "published"
)

// HomePageID identifies the system home page. It is seeded at startup and
// can never be deleted; its config drives the publicly rendered home
// content.
const HomePageID int64 = 1

// Page is one landing page owned by the builder. Config holds the full
// serialized page document; an empty column falls back to the default
// document when the page is opened.
type Page struct {
	gorm.Model
	PageID       int64  `gorm:"uniqueIndex;not null"`
	Title        string `gorm:"not null"`
	Thumbnail    string
	URL          string `gorm:"uniqueIndex;not null"`
	Status       string `gorm:"type:varchar(16);not null;default:draft"`
	LastModified string
	Config       datatypes.JSON
}

// Protected reports whether the page is the undeletable system page.
func (p *Page) Protected() bool {
	return p.PageID == HomePageID
}

// Published reports whether the page is publicly visible.
func (p *Page) Published() bool {
	return p.Status == PageStatusPublished
}

// ValidPageStatus reports whether the value names a known status.
func ValidPageStatus(status string) bool {
	return status == PageStatusDraft || status == PageStatusPublished
}
