package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"pagehelm/internal/pageconfig"
	"pagehelm/internal/render"
)

// Landing renders a page document as HTML. The same component serves the
// authoring preview and the public page; render.Options selects which.
func Landing(cfg pageconfig.PageConfig, opts render.Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		colors := cfg.Colors
		if _, err := fmt.Fprintf(w, `<div class="landing" style="background-color:%s;color:%s">`+"\n",
			SafeColor(colors.Background, "#ffffff"), SafeColor(colors.Text, "#111827")); err != nil {
			return err
		}
		for _, section := range render.Sections(cfg, opts) {
			if err := renderSection(w, section, colors); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>\n")
		return err
	})
}

func renderSection(w io.Writer, section render.Section, colors pageconfig.Colors) error {
	class := "landing-section"
	if section.Dimmed {
		class += " landing-section-dimmed"
	}
	if _, err := fmt.Fprintf(w, `<section id="%s" class="%s">`+"\n", section.Anchor, class); err != nil {
		return err
	}
	if section.Dimmed {
		if _, err := io.WriteString(w, `<span class="section-hidden-badge">Hidden section</span>`+"\n"); err != nil {
			return err
		}
	}

	var err error
	switch {
	case section.Hero != nil:
		err = renderHero(w, section.Hero, colors)
	case section.About != nil:
		err = renderAbout(w, section.About)
	case section.Audience != nil:
		err = renderAudience(w, section.Audience)
	case section.Features != nil:
		err = renderFeatures(w, section.Features)
	case section.Curriculum != nil:
		err = renderCurriculum(w, section.Curriculum, section.Anchor)
	case section.Bonus != nil:
		err = renderBonus(w, section.Bonus)
	case section.Testimonials != nil:
		err = renderTestimonials(w, section.Testimonials)
	case section.Pricing != nil:
		err = renderPricing(w, section.Pricing, colors)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, "</section>\n")
	return err
}

func renderHero(w io.Writer, hero *pageconfig.HeroSection, colors pageconfig.Colors) error {
	if hero.Badge != "" {
		if _, err := fmt.Fprintf(w, `<span class="hero-badge" style="background-color:%s">%s</span>`+"\n",
			SafeColor(colors.Secondary, "#6b7280"), CleanText(hero.Badge)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<h1 style="font-size:%dpx">%s</h1>`+"\n", hero.HeadlineSize, CleanText(hero.Headline)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<p class="hero-subheadline" style="font-size:%dpx">%s</p>`+"\n", hero.SubheadlineSize, CleanText(hero.Subheadline)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<a class="hero-cta" href="%s" style="background-color:%s">%s</a>`+"\n",
		SafeLink(hero.CTALink), SafeColor(colors.Primary, "#4f46e5"), CleanText(hero.CTAButton)); err != nil {
		return err
	}
	if hero.DemoButton != "" {
		if _, err := fmt.Fprintf(w, `<a class="hero-demo" href="%s">%s</a>`+"\n", SafeLink(hero.DemoLink), CleanText(hero.DemoButton)); err != nil {
			return err
		}
	}
	return nil
}

func renderAbout(w io.Writer, about *pageconfig.AboutSection) error {
	if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n<p>%s</p>\n", CleanText(about.Title), CleanText(about.Description)); err != nil {
		return err
	}
	if src := SafeImage(about.Image); src != "" {
		if _, err := fmt.Fprintf(w, `<img src="%s" alt="%s">`+"\n", src, CleanText(about.Title)); err != nil {
			return err
		}
	}
	if len(about.Checklist) > 0 {
		if _, err := io.WriteString(w, `<ul class="about-checklist">`+"\n"); err != nil {
			return err
		}
		for _, entry := range about.Checklist {
			if _, err := fmt.Fprintf(w, "<li>%s</li>\n", CleanText(entry)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul>\n"); err != nil {
			return err
		}
	}
	return nil
}

func renderAudience(w io.Writer, audience *render.AudienceView) error {
	if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n<p>%s</p>\n", CleanText(audience.Title), CleanText(audience.Subtitle)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<div class="audience-grid">`+"\n"); err != nil {
		return err
	}
	for _, item := range audience.Items {
		if _, err := fmt.Fprintf(w, `<div class="audience-card"><h3>%s</h3><p>%s</p></div>`+"\n",
			CleanText(item.Title), CleanText(item.Description)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}

func renderFeatures(w io.Writer, features *pageconfig.FeaturesSection) error {
	if features.Badge != "" {
		if _, err := fmt.Fprintf(w, `<span class="section-badge">%s</span>`+"\n", CleanText(features.Badge)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n", CleanText(features.Title)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<div class="feature-grid">`+"\n"); err != nil {
		return err
	}
	for _, item := range features.Items {
		if _, err := fmt.Fprintf(w, `<div class="feature-card"><h3>%s</h3><p>%s</p></div>`+"\n",
			CleanText(item.Title), CleanText(item.Description)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}

func renderCurriculum(w io.Writer, curriculum *render.CurriculumView, anchor string) error {
	if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n<p>%s</p>\n", CleanText(curriculum.Title), CleanText(curriculum.Description)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<ol class="curriculum-list">`+"\n"); err != nil {
		return err
	}
	for _, module := range curriculum.Items {
		if _, err := fmt.Fprintf(w, `<li class="curriculum-module"><h3>%s</h3><span class="module-duration">%s</span>`+"\n",
			CleanText(module.Title), CleanText(module.Duration)); err != nil {
			return err
		}
		if len(module.Lessons) > 0 {
			if _, err := io.WriteString(w, "<ul>\n"); err != nil {
				return err
			}
			for _, lesson := range module.Lessons {
				if _, err := fmt.Fprintf(w, "<li>%s</li>\n", CleanText(lesson)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</ul>\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</li>\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</ol>\n"); err != nil {
		return err
	}
	if curriculum.MoreCount > 0 {
		label := curriculum.ButtonText
		if label == "" {
			label = "Show all modules"
		}
		if _, err := fmt.Fprintf(w, `<button class="curriculum-more" hx-get="?curriculum=all" hx-target="#%s" hx-swap="outerHTML">%s (+%d)</button>`+"\n",
			anchor, CleanText(label), curriculum.MoreCount); err != nil {
			return err
		}
	}
	return nil
}

func renderBonus(w io.Writer, bonus *pageconfig.BonusSection) error {
	if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n<p>%s</p>\n", CleanText(bonus.Title), CleanText(bonus.Subtitle)); err != nil {
		return err
	}
	for _, item := range bonus.Items {
		if _, err := fmt.Fprintf(w, `<div class="bonus-card"><h3>%s</h3><p>%s</p><span class="bonus-value">%s</span></div>`+"\n",
			CleanText(item.Title), CleanText(item.Description), CleanText(item.Value)); err != nil {
			return err
		}
	}
	return nil
}

func renderTestimonials(w io.Writer, testimonials *pageconfig.TestimonialsSection) error {
	if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n<p>%s</p>\n", CleanText(testimonials.Title), CleanText(testimonials.Subtitle)); err != nil {
		return err
	}
	for _, item := range testimonials.Items {
		if _, err := io.WriteString(w, `<figure class="testimonial">`+"\n"); err != nil {
			return err
		}
		if src := SafeImage(item.Image); src != "" {
			if _, err := fmt.Fprintf(w, `<img src="%s" alt="%s">`+"\n", src, CleanText(item.Name)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<blockquote>%s</blockquote><figcaption>%s, %s</figcaption></figure>`+"\n",
			CleanText(item.Text), CleanText(item.Name), CleanText(item.Role)); err != nil {
			return err
		}
	}
	return nil
}

func renderPricing(w io.Writer, pricing *pageconfig.PricingSection, colors pageconfig.Colors) error {
	if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n<p>%s</p>\n", CleanText(pricing.Title), CleanText(pricing.Subtitle)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<div class="pricing-price">%s</div>`+"\n", CleanText(pricing.Price)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<a class="pricing-cta" href="%s" style="background-color:%s">%s</a>`+"\n",
		SafeLink(pricing.ButtonLink), SafeColor(colors.Primary, "#4f46e5"), CleanText(pricing.ButtonText)); err != nil {
		return err
	}
	if pricing.Guarantee != "" {
		if _, err := fmt.Fprintf(w, `<p class="pricing-guarantee">%s</p>`+"\n", CleanText(pricing.Guarantee)); err != nil {
			return err
		}
	}
	return nil
}
