// Package render projects a page document into the ordered sequence of
// sections a view should draw. The same projection drives the authoring
// preview and the public page; only the visibility rules differ.
package render

import (
	"pagehelm/internal/pageconfig"
)

// Sections with more curriculum modules than this collapse behind a "show
// more" toggle until expanded.
const curriculumCollapseLimit = 4

// Options select the view the projection is for.
type Options struct {
	// Preview keeps disabled sections in the output, marked Dimmed, so
	// the author can see and re-enable them. Public output omits them.
	Preview bool
	// CurriculumExpanded is a pure view toggle; it is not part of the
	// page document.
	CurriculumExpanded bool
}

// Section is one renderable block. Exactly one of the payload pointers is
// set, matching Key.
type Section struct {
	Key    pageconfig.SectionKey
	Anchor string
	// Dimmed marks a disabled section that is still shown in preview.
	Dimmed bool

	Hero         *pageconfig.HeroSection
	About        *pageconfig.AboutSection
	Audience     *AudienceView
	Features     *pageconfig.FeaturesSection
	Curriculum   *CurriculumView
	Bonus        *pageconfig.BonusSection
	Testimonials *pageconfig.TestimonialsSection
	Pricing      *pageconfig.PricingSection
}

// AudienceView is the target-audience section with inactive items already
// filtered out. The item filter applies regardless of section state.
type AudienceView struct {
	Title    string
	Subtitle string
	Items    []pageconfig.AudienceItem
}

// CurriculumView is the curriculum section with the collapse rule applied.
type CurriculumView struct {
	Title       string
	Description string
	ButtonText  string
	Items       []pageconfig.ModuleItem
	// MoreCount is how many modules the collapsed view hides.
	MoreCount int
	Expanded  bool
}

// Anchor returns the stable preview anchor for a section key. Editor focus
// cues and tests target these ids.
func Anchor(key pageconfig.SectionKey) string {
	return "section-" + string(key)
}

// Sections maps a page document to its renderable blocks in the fixed
// order hero, about, targetAudience, features, curriculum, bonus,
// testimonials, pricing.
func Sections(cfg pageconfig.PageConfig, opts Options) []Section {
	out := make([]Section, 0, len(pageconfig.SectionOrder()))
	for _, key := range pageconfig.SectionOrder() {
		enabled := sectionEnabled(cfg, key)
		if !enabled && !opts.Preview {
			continue
		}
		section := Section{
			Key:    key,
			Anchor: Anchor(key),
			Dimmed: !enabled,
		}
		attachPayload(&section, cfg, opts)
		out = append(out, section)
	}
	return out
}

func sectionEnabled(cfg pageconfig.PageConfig, key pageconfig.SectionKey) bool {
	switch key {
	case pageconfig.SectionHero:
		return cfg.Hero.Enabled
	case pageconfig.SectionAbout:
		return cfg.About.Enabled
	case pageconfig.SectionTargetAudience:
		return cfg.TargetAudience.Enabled
	case pageconfig.SectionFeatures:
		return cfg.Features.Enabled
	case pageconfig.SectionCurriculum:
		return cfg.Curriculum.Enabled
	case pageconfig.SectionBonus:
		return cfg.Bonus.Enabled
	case pageconfig.SectionTestimonials:
		return cfg.Testimonials.Enabled
	case pageconfig.SectionPricing:
		return cfg.Pricing.Enabled
	}
	return false
}

func attachPayload(section *Section, cfg pageconfig.PageConfig, opts Options) {
	switch section.Key {
	case pageconfig.SectionHero:
		hero := cfg.Hero
		section.Hero = &hero
	case pageconfig.SectionAbout:
		about := cfg.About
		section.About = &about
	case pageconfig.SectionTargetAudience:
		section.Audience = &AudienceView{
			Title:    cfg.TargetAudience.Title,
			Subtitle: cfg.TargetAudience.Subtitle,
			Items:    activeAudienceItems(cfg.TargetAudience.Items),
		}
	case pageconfig.SectionFeatures:
		features := cfg.Features
		section.Features = &features
	case pageconfig.SectionCurriculum:
		section.Curriculum = curriculumView(cfg.Curriculum, opts.CurriculumExpanded)
	case pageconfig.SectionBonus:
		bonus := cfg.Bonus
		section.Bonus = &bonus
	case pageconfig.SectionTestimonials:
		testimonials := cfg.Testimonials
		section.Testimonials = &testimonials
	case pageconfig.SectionPricing:
		pricing := cfg.Pricing
		section.Pricing = &pricing
	}
}

func activeAudienceItems(items []pageconfig.AudienceItem) []pageconfig.AudienceItem {
	out := make([]pageconfig.AudienceItem, 0, len(items))
	for _, item := range items {
		if item.Active {
			out = append(out, item)
		}
	}
	return out
}

func curriculumView(section pageconfig.CurriculumSection, expanded bool) *CurriculumView {
	view := &CurriculumView{
		Title:       section.Title,
		Description: section.Description,
		ButtonText:  section.ButtonText,
		Items:       section.Items,
		Expanded:    expanded,
	}
	if !expanded && len(section.Items) > curriculumCollapseLimit {
		view.Items = section.Items[:curriculumCollapseLimit]
		view.MoreCount = len(section.Items) - curriculumCollapseLimit
	}
	return view
}
