package pageconfig

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minHeadlineSize    = 24
	maxHeadlineSize    = 120
	minSubheadlineSize = 12
	maxSubheadlineSize = 48
)

func clampHeadlineSize(size int) int {
	return clamp(size, minHeadlineSize, maxHeadlineSize)
}

func clampSubheadlineSize(size int) int {
	return clamp(size, minSubheadlineSize, maxSubheadlineSize)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fieldError(section SectionKey, field string) error {
	return fmt.Errorf("pageconfig: section %q has no field %q", section, field)
}

func asString(section SectionKey, field string, value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("pageconfig: field %s.%s expects a string, got %T", section, field, value)
}

func asBool(section SectionKey, field string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err == nil {
			return parsed, nil
		}
	}
	return false, fmt.Errorf("pageconfig: field %s.%s expects a bool, got %T", section, field, value)
}

func asInt(section SectionKey, field string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			return parsed, nil
		}
	}
	return 0, fmt.Errorf("pageconfig: field %s.%s expects an integer, got %T", section, field, value)
}

func asStringList(section SectionKey, field string, value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), nil
	case string:
		return strings.Split(strings.ReplaceAll(v, "\r\n", "\n"), "\n"), nil
	}
	return nil, fmt.Errorf("pageconfig: field %s.%s expects a string list, got %T", section, field, value)
}

// UpdateField returns a copy of the document with exactly one field of one
// section replaced. Every other section is untouched and keeps the input's
// backing storage, so change detection can rely on identity. Unknown
// section or field names fail with a precise error instead of silently
// writing nothing.
func UpdateField(cfg PageConfig, section SectionKey, field string, value any) (PageConfig, error) {
	// Field updates assign scalars or fresh slices, never elements of an
	// existing list, so a shallow copy is enough.
	out := cfg
	var err error
	switch section {
	case SectionColors:
		err = updateColors(&out.Colors, field, value)
	case SectionHero:
		err = updateHero(&out.Hero, field, value)
	case SectionAbout:
		err = updateAbout(&out.About, field, value)
	case SectionTargetAudience:
		err = updateAudience(&out.TargetAudience, field, value)
	case SectionFeatures:
		err = updateFeatures(&out.Features, field, value)
	case SectionCurriculum:
		err = updateCurriculum(&out.Curriculum, field, value)
	case SectionBonus:
		err = updateBonus(&out.Bonus, field, value)
	case SectionTestimonials:
		err = updateTestimonials(&out.Testimonials, field, value)
	case SectionPricing:
		err = updatePricing(&out.Pricing, field, value)
	default:
		err = fmt.Errorf("pageconfig: unknown section %q", section)
	}
	if err != nil {
		return PageConfig{}, err
	}
	return out, nil
}

func updateColors(c *Colors, field string, value any) error {
	s, err := asString(SectionColors, field, value)
	if err != nil {
		return err
	}
	switch field {
	case "primary":
		c.Primary = s
	case "secondary":
		c.Secondary = s
	case "background":
		c.Background = s
	case "text":
		c.Text = s
	default:
		return fieldError(SectionColors, field)
	}
	return nil
}

func updateHero(h *HeroSection, field string, value any) error {
	switch field {
	case "enabled":
		b, err := asBool(SectionHero, field, value)
		if err != nil {
			return err
		}
		h.Enabled = b
	case "headlineSize":
		n, err := asInt(SectionHero, field, value)
		if err != nil {
			return err
		}
		h.HeadlineSize = clampHeadlineSize(n)
	case "subheadlineSize":
		n, err := asInt(SectionHero, field, value)
		if err != nil {
			return err
		}
		h.SubheadlineSize = clampSubheadlineSize(n)
	case "badge", "headline", "subheadline", "ctaButton", "ctaLink", "demoButton", "demoLink":
		s, err := asString(SectionHero, field, value)
		if err != nil {
			return err
		}
		switch field {
		case "badge":
			h.Badge = s
		case "headline":
			h.Headline = s
		case "subheadline":
			h.Subheadline = s
		case "ctaButton":
			h.CTAButton = s
		case "ctaLink":
			h.CTALink = s
		case "demoButton":
			h.DemoButton = s
		case "demoLink":
			h.DemoLink = s
		}
	default:
		return fieldError(SectionHero, field)
	}
	return nil
}

func updateAbout(a *AboutSection, field string, value any) error {
	switch field {
	case "enabled":
		b, err := asBool(SectionAbout, field, value)
		if err != nil {
			return err
		}
		a.Enabled = b
	case "checklist":
		list, err := asStringList(SectionAbout, field, value)
		if err != nil {
			return err
		}
		a.Checklist = list
	case "title", "description", "image":
		s, err := asString(SectionAbout, field, value)
		if err != nil {
			return err
		}
		switch field {
		case "title":
			a.Title = s
		case "description":
			a.Description = s
		case "image":
			a.Image = s
		}
	default:
		return fieldError(SectionAbout, field)
	}
	return nil
}

func updateAudience(t *TargetAudienceSection, field string, value any) error {
	switch field {
	case "enabled":
		b, err := asBool(SectionTargetAudience, field, value)
		if err != nil {
			return err
		}
		t.Enabled = b
	case "title", "subtitle":
		s, err := asString(SectionTargetAudience, field, value)
		if err != nil {
			return err
		}
		if field == "title" {
			t.Title = s
		} else {
			t.Subtitle = s
		}
	default:
		return fieldError(SectionTargetAudience, field)
	}
	return nil
}

func updateFeatures(f *FeaturesSection, field string, value any) error {
	switch field {
	case "enabled":
		b, err := asBool(SectionFeatures, field, value)
		if err != nil {
			return err
		}
		f.Enabled = b
	case "badge", "title":
		s, err := asString(SectionFeatures, field, value)
		if err != nil {
			return err
		}
		if field == "badge" {
			f.Badge = s
		} else {
			f.Title = s
		}
	default:
		return fieldError(SectionFeatures, field)
	}
	return nil
}

func updateCurriculum(c *CurriculumSection, field string, value any) error {
	switch field {
	case "enabled":
		b, err := asBool(SectionCurriculum, field, value)
		if err != nil {
			return err
		}
		c.Enabled = b
	case "title", "description", "buttonText":
		s, err := asString(SectionCurriculum, field, value)
		if err != nil {
			return err
		}
		switch field {
		case "title":
			c.Title = s
		case "description":
			c.Description = s
		case "buttonText":
			c.ButtonText = s
		}
	default:
		return fieldError(SectionCurriculum, field)
	}
	return nil
}

func updateBonus(b *BonusSection, field string, value any) error {
	switch field {
	case "enabled":
		v, err := asBool(SectionBonus, field, value)
		if err != nil {
			return err
		}
		b.Enabled = v
	case "title", "subtitle":
		s, err := asString(SectionBonus, field, value)
		if err != nil {
			return err
		}
		if field == "title" {
			b.Title = s
		} else {
			b.Subtitle = s
		}
	default:
		return fieldError(SectionBonus, field)
	}
	return nil
}

func updateTestimonials(t *TestimonialsSection, field string, value any) error {
	switch field {
	case "enabled":
		v, err := asBool(SectionTestimonials, field, value)
		if err != nil {
			return err
		}
		t.Enabled = v
	case "title", "subtitle":
		s, err := asString(SectionTestimonials, field, value)
		if err != nil {
			return err
		}
		if field == "title" {
			t.Title = s
		} else {
			t.Subtitle = s
		}
	default:
		return fieldError(SectionTestimonials, field)
	}
	return nil
}

func updatePricing(p *PricingSection, field string, value any) error {
	switch field {
	case "enabled":
		v, err := asBool(SectionPricing, field, value)
		if err != nil {
			return err
		}
		p.Enabled = v
	case "title", "subtitle", "price", "buttonText", "buttonLink", "guarantee":
		s, err := asString(SectionPricing, field, value)
		if err != nil {
			return err
		}
		switch field {
		case "title":
			p.Title = s
		case "subtitle":
			p.Subtitle = s
		case "price":
			p.Price = s
		case "buttonText":
			p.ButtonText = s
		case "buttonLink":
			p.ButtonLink = s
		case "guarantee":
			p.Guarantee = s
		}
	default:
		return fieldError(SectionPricing, field)
	}
	return nil
}
