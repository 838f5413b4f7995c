package models

import (
	"strings"

	"gorm.io/gorm"
)

// Plan is one subscription offer shown on pricing surfaces. Features is a
// newline-encoded ordered list: the encoding preserves every line,
// including empty ones, so an in-progress edit round-trips losslessly.
// Rendering filters blank lines instead.
type Plan struct {
	gorm.Model
	Key         string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	Price       string
	Period      string
	Description string `gorm:"type:text"`
	Features    string `gorm:"type:text"`
	Color       string
	Popular     bool
	Active      bool `gorm:"not null;default:true"`
}

// FeatureList decodes the ordered feature lines.
func (p *Plan) FeatureList() []string {
	if p.Features == "" {
		return nil
	}
	return strings.Split(p.Features, "\n")
}

// SetFeatureList encodes the ordered feature lines.
func (p *Plan) SetFeatureList(features []string) {
	p.Features = strings.Join(features, "\n")
}

// VisibleFeatures returns the feature lines suitable for public display,
// with blank entries removed and surrounding whitespace trimmed.
func (p *Plan) VisibleFeatures() []string {
	var out []string
	for _, f := range p.FeatureList() {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
