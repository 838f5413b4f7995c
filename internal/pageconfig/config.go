// Package pageconfig defines the document model for a single landing page:
// its colors, its nine content sections, and the merge and patch operations
// that keep editor, preview, and published output consistent.
package pageconfig

import (
	"encoding/json"
	"fmt"
)

// Colors holds the four named color values applied across every section.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// HeroSection is the opening block of the page.
type HeroSection struct {
	Enabled         bool   `json:"enabled"`
	Badge           string `json:"badge"`
	Headline        string `json:"headline"`
	Subheadline     string `json:"subheadline"`
	HeadlineSize    int    `json:"headlineSize"`
	SubheadlineSize int    `json:"subheadlineSize"`
	CTAButton       string `json:"ctaButton"`
	CTALink         string `json:"ctaLink"`
	DemoButton      string `json:"demoButton"`
	DemoLink        string `json:"demoLink"`
}

// AboutSection describes the product.
type AboutSection struct {
	Enabled     bool     `json:"enabled"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Checklist   []string `json:"checklist"`
}

// AudienceItem is one audience profile card. Active is a required field:
// an absent value on the wire decodes to true, so the in-memory model is
// never tri-state.
type AudienceItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// UnmarshalJSON defaults Active to true when the key is missing.
func (i *AudienceItem) UnmarshalJSON(data []byte) error {
	type alias AudienceItem
	aux := struct {
		*alias
		Active *bool `json:"active"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	i.Active = aux.Active == nil || *aux.Active
	return nil
}

// TargetAudienceSection lists who the page is for.
type TargetAudienceSection struct {
	Enabled  bool           `json:"enabled"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Items    []AudienceItem `json:"items"`
}

// FeatureItem is one differentiator card.
type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeaturesSection lists the product differentiators.
type FeaturesSection struct {
	Enabled bool          `json:"enabled"`
	Badge   string        `json:"badge"`
	Title   string        `json:"title"`
	Items   []FeatureItem `json:"items"`
}

// ModuleItem is one curriculum module with its lesson list.
type ModuleItem struct {
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Lessons  []string `json:"lessons"`
}

// CurriculumSection describes the included training content.
type CurriculumSection struct {
	Enabled     bool         `json:"enabled"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ButtonText  string       `json:"buttonText"`
	Items       []ModuleItem `json:"items"`
}

// BonusItem is one launch bonus.
type BonusItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// BonusSection lists the launch bonuses.
type BonusSection struct {
	Enabled  bool        `json:"enabled"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Items    []BonusItem `json:"items"`
}

// TestimonialItem is one customer quote.
type TestimonialItem struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

// TestimonialsSection holds social proof.
type TestimonialsSection struct {
	Enabled  bool              `json:"enabled"`
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Items    []TestimonialItem `json:"items"`
}

// PricingSection is the closing offer block.
type PricingSection struct {
	Enabled    bool   `json:"enabled"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Price      string `json:"price"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
	Guarantee  string `json:"guarantee"`
}

// PageConfig is the root document describing one landing page. A fully
// resolved document always carries every section; absent sections are
// filled from Default before use.
type PageConfig struct {
	Colors         Colors                `json:"colors"`
	Hero           HeroSection           `json:"hero"`
	About          AboutSection          `json:"about"`
	TargetAudience TargetAudienceSection `json:"targetAudience"`
	Features       FeaturesSection       `json:"features"`
	Curriculum     CurriculumSection     `json:"curriculum"`
	Bonus          BonusSection          `json:"bonus"`
	Testimonials   TestimonialsSection   `json:"testimonials"`
	Pricing        PricingSection        `json:"pricing"`
}

// SectionKey names one addressable part of a PageConfig.
type SectionKey string

const (
	SectionColors         SectionKey = "colors"
	SectionHero           SectionKey = "hero"
	SectionAbout          SectionKey = "about"
	SectionTargetAudience SectionKey = "targetAudience"
	SectionFeatures       SectionKey = "features"
	SectionCurriculum     SectionKey = "curriculum"
	SectionBonus          SectionKey = "bonus"
	SectionTestimonials   SectionKey = "testimonials"
	SectionPricing        SectionKey = "pricing"
)

// SectionOrder returns the content sections in their fixed render order.
// Colors is not a renderable section and is excluded.
func SectionOrder() []SectionKey {
	return []SectionKey{
		SectionHero,
		SectionAbout,
		SectionTargetAudience,
		SectionFeatures,
		SectionCurriculum,
		SectionBonus,
		SectionTestimonials,
		SectionPricing,
	}
}

// ParseSectionKey validates a user supplied section name.
func ParseSectionKey(value string) (SectionKey, error) {
	key := SectionKey(value)
	switch key {
	case SectionColors, SectionHero, SectionAbout, SectionTargetAudience,
		SectionFeatures, SectionCurriculum, SectionBonus,
		SectionTestimonials, SectionPricing:
		return key, nil
	}
	return "", fmt.Errorf("pageconfig: unknown section %q", value)
}

// Clone returns a deep copy of the document.
func (c PageConfig) Clone() PageConfig {
	out := c
	out.About.Checklist = append([]string(nil), c.About.Checklist...)
	out.TargetAudience.Items = append([]AudienceItem(nil), c.TargetAudience.Items...)
	out.Features.Items = append([]FeatureItem(nil), c.Features.Items...)
	out.Curriculum.Items = append([]ModuleItem(nil), c.Curriculum.Items...)
	for i, module := range out.Curriculum.Items {
		out.Curriculum.Items[i].Lessons = append([]string(nil), module.Lessons...)
	}
	out.Bonus.Items = append([]BonusItem(nil), c.Bonus.Items...)
	out.Testimonials.Items = append([]TestimonialItem(nil), c.Testimonials.Items...)
	return out
}

// Encode serializes the document for storage.
func (c PageConfig) Encode() ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("pageconfig: encode: %w", err)
	}
	return data, nil
}

// Decode parses a stored document, filling any missing sections from the
// defaults.
func Decode(data []byte) (PageConfig, error) {
	if len(data) == 0 {
		return Default(), nil
	}
	return Merge(Default(), data)
}
