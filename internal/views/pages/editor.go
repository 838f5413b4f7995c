package pages

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"pagehelm/internal/editor"
	"pagehelm/internal/pageconfig"
	"pagehelm/internal/render"
)

// EditorData carries one edit session render.
type EditorData struct {
	Session editor.Session
	Message string
}

// Editor renders the split editing surface: the section panel on the left
// and the live preview on the right. Field edits post back over HTMX and
// re-render the whole surface.
func Editor(data EditorData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="editor" id="editor">`+"\n"); err != nil {
			return err
		}
		if data.Message != "" {
			if _, err := fmt.Fprintf(w, `<div class="form-error" role="alert">%s</div>`+"\n", templ.EscapeString(data.Message)); err != nil {
				return err
			}
		}
		if err := writeEditorToolbar(w, data.Session); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="editor-split"><aside class="editor-panel">`+"\n"); err != nil {
			return err
		}
		if err := writeSectionNav(w, data.Session); err != nil {
			return err
		}
		if err := writeSectionForm(w, data.Session); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</aside><div class="editor-preview">`+"\n"); err != nil {
			return err
		}
		preview := Landing(data.Session.Config, render.Options{Preview: true, CurriculumExpanded: true})
		if err := preview.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div></div>\n</div>\n")
		return err
	})
}

func writeEditorToolbar(w io.Writer, session editor.Session) error {
	_, err := fmt.Fprintf(w, `<header class="editor-toolbar">
<form hx-post="/app/editor/title" hx-target="#editor" hx-swap="outerHTML">
<input type="text" name="title" value="%s" aria-label="Page title">
</form>
<form method="post" action="/app/editor/save"><button type="submit">Save</button></form>
<form method="post" action="/app/editor/discard"><button type="submit" class="secondary">Discard</button></form>
</header>
`, templ.EscapeString(session.Title))
	return err
}

func writeSectionNav(w io.Writer, session editor.Session) error {
	if _, err := io.WriteString(w, `<nav class="section-nav">`+"\n"); err != nil {
		return err
	}
	keys := append([]pageconfig.SectionKey{pageconfig.SectionColors}, pageconfig.SectionOrder()...)
	for _, key := range keys {
		class := "section-link"
		if key == session.Focus {
			class = "section-link section-link-active"
		}
		if _, err := fmt.Fprintf(w, `<button class="%s" hx-post="/app/editor/focus" hx-vals='{"section":"%s"}' hx-target="#editor" hx-swap="outerHTML">%s</button>`+"\n",
			class, key, sectionLabel(key)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</nav>\n")
	return err
}

func sectionLabel(key pageconfig.SectionKey) string {
	switch key {
	case pageconfig.SectionColors:
		return "Colors"
	case pageconfig.SectionHero:
		return "Hero"
	case pageconfig.SectionAbout:
		return "About"
	case pageconfig.SectionTargetAudience:
		return "Audience"
	case pageconfig.SectionFeatures:
		return "Features"
	case pageconfig.SectionCurriculum:
		return "Curriculum"
	case pageconfig.SectionBonus:
		return "Bonuses"
	case pageconfig.SectionTestimonials:
		return "Testimonials"
	case pageconfig.SectionPricing:
		return "Pricing"
	}
	return string(key)
}

func writeSectionForm(w io.Writer, session editor.Session) error {
	cfg := session.Config
	switch session.Focus {
	case pageconfig.SectionColors:
		return writeFieldRows(w, session.Focus, []fieldRow{
			{"primary", "Primary color", cfg.Colors.Primary, "text"},
			{"secondary", "Secondary color", cfg.Colors.Secondary, "text"},
			{"background", "Background", cfg.Colors.Background, "text"},
			{"text", "Text color", cfg.Colors.Text, "text"},
		})
	case pageconfig.SectionHero:
		return writeFieldRows(w, session.Focus, []fieldRow{
			{"enabled", "Show section", boolValue(cfg.Hero.Enabled), "checkbox"},
			{"badge", "Badge", cfg.Hero.Badge, "text"},
			{"headline", "Headline", cfg.Hero.Headline, "text"},
			{"subheadline", "Subheadline", cfg.Hero.Subheadline, "textarea"},
			{"headlineSize", "Headline size", strconv.Itoa(cfg.Hero.HeadlineSize), "number"},
			{"subheadlineSize", "Subheadline size", strconv.Itoa(cfg.Hero.SubheadlineSize), "number"},
			{"ctaButton", "CTA button", cfg.Hero.CTAButton, "text"},
			{"ctaLink", "CTA link", cfg.Hero.CTALink, "text"},
			{"demoButton", "Secondary button", cfg.Hero.DemoButton, "text"},
			{"demoLink", "Secondary link", cfg.Hero.DemoLink, "text"},
		})
	case pageconfig.SectionAbout:
		return writeFieldRows(w, session.Focus, []fieldRow{
			{"enabled", "Show section", boolValue(cfg.About.Enabled), "checkbox"},
			{"title", "Title", cfg.About.Title, "text"},
			{"description", "Description", cfg.About.Description, "textarea"},
			{"image", "Image URL", cfg.About.Image, "text"},
		})
	case pageconfig.SectionTargetAudience:
		if err := writeFieldRows(w, session.Focus, []fieldRow{
			{"enabled", "Show section", boolValue(cfg.TargetAudience.Enabled), "checkbox"},
			{"title", "Title", cfg.TargetAudience.Title, "text"},
			{"subtitle", "Subtitle", cfg.TargetAudience.Subtitle, "text"},
		}); err != nil {
			return err
		}
		return writeAudienceItems(w, cfg.TargetAudience.Items)
	case pageconfig.SectionFeatures:
		if err := writeFieldRows(w, session.Focus, []fieldRow{
			{"enabled", "Show section", boolValue(cfg.Features.Enabled), "checkbox"},
			{"badge", "Badge", cfg.Features.Badge, "text"},
			{"title", "Title", cfg.Features.Title, "text"},
		}); err != nil {
			return err
		}
		return writeItemList(w, session.Focus, len(cfg.Features.Items), func(i int) []fieldRow {
			item := cfg.Features.Items[i]
			return []fieldRow{
				{"title", "Title", item.Title, "text"},
				{"description", "Description", item.Description, "textarea"},
			}
		})
	case pageconfig.SectionCurriculum:
		if err := writeFieldRows(w, session.Focus, []fieldRow{
			{"enabled", "Show section", boolValue(cfg.Curriculum.Enabled), "checkbox"},
			{"title", "Title", cfg.Curriculum.Title, "text"},
			{"description", "Description", cfg.Curriculum.Description, "textarea"},
			{"buttonText", "Show-more label", cfg.Curriculum.ButtonText, "text"},
		}); err != nil {
			return err
		}
		return writeItemList(w, session.Focus, len(cfg.Curriculum.Items), func(i int) []fieldRow {
			item := cfg.Curriculum.Items[i]
			return []fieldRow{
				{"title", "Module title", item.Title, "text"},
				{"duration", "Duration", item.Duration, "text"},
				{"lessons", "Lessons, one per line", joinLines(item.Lessons), "textarea"},
			}
		})
	case pageconfig.SectionBonus:
		if err := writeFieldRows(w, session.Focus, []fieldRow{
			{"enabled", "Show section", boolValue(cfg.Bonus.Enabled), "checkbox"},
			{"title", "Title", cfg.Bonus.Title, "text"},
			{"subtitle", "Subtitle", cfg.Bonus.Subtitle, "text"},
		}); err != nil {
			return err
		}
		return writeItemList(w, session.Focus, len(cfg.Bonus.Items), func(i int) []fieldRow {
			item := cfg.Bonus.Items[i]
			return []fieldRow{
				{"title", "Title", item.Title, "text"},
				{"description", "Description", item.Description, "textarea"},
				{"value", "Stated value", item.Value, "text"},
			}
		})
	case pageconfig.SectionTestimonials:
		if err := writeFieldRows(w, session.Focus, []fieldRow{
			{"enabled", "Show section", boolValue(cfg.Testimonials.Enabled), "checkbox"},
			{"title", "Title", cfg.Testimonials.Title, "text"},
			{"subtitle", "Subtitle", cfg.Testimonials.Subtitle, "text"},
		}); err != nil {
			return err
		}
		return writeItemList(w, session.Focus, len(cfg.Testimonials.Items), func(i int) []fieldRow {
			item := cfg.Testimonials.Items[i]
			return []fieldRow{
				{"name", "Name", item.Name, "text"},
				{"role", "Role", item.Role, "text"},
				{"text", "Testimonial", item.Text, "textarea"},
				{"image", "Photo URL", item.Image, "text"},
			}
		})
	case pageconfig.SectionPricing:
		return writeFieldRows(w, session.Focus, []fieldRow{
			{"enabled", "Show section", boolValue(cfg.Pricing.Enabled), "checkbox"},
			{"title", "Title", cfg.Pricing.Title, "text"},
			{"subtitle", "Subtitle", cfg.Pricing.Subtitle, "text"},
			{"price", "Price", cfg.Pricing.Price, "text"},
			{"buttonText", "Button text", cfg.Pricing.ButtonText, "text"},
			{"buttonLink", "Button link", cfg.Pricing.ButtonLink, "text"},
			{"guarantee", "Guarantee", cfg.Pricing.Guarantee, "text"},
		})
	}
	return nil
}

type fieldRow struct {
	name  string
	label string
	value string
	kind  string
}

func writeFieldRows(w io.Writer, section pageconfig.SectionKey, rows []fieldRow) error {
	if _, err := fmt.Fprintf(w, `<div class="section-form" data-section="%s">`+"\n", section); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeFieldRow(w, "/app/editor/field", section, -1, row); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}

func writeAudienceItems(w io.Writer, items []pageconfig.AudienceItem) error {
	return writeItemList(w, pageconfig.SectionTargetAudience, len(items), func(i int) []fieldRow {
		item := items[i]
		return []fieldRow{
			{"title", "Title", item.Title, "text"},
			{"description", "Description", item.Description, "textarea"},
			{"active", "Active", boolValue(item.Active), "checkbox"},
		}
	})
}

func writeItemList(w io.Writer, section pageconfig.SectionKey, count int, rowsFor func(int) []fieldRow) error {
	if _, err := io.WriteString(w, `<div class="item-list">`+"\n"); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if _, err := fmt.Fprintf(w, `<fieldset class="item"><legend>Item %d</legend>`+"\n", i+1); err != nil {
			return err
		}
		for _, row := range rowsFor(i) {
			if err := writeFieldRow(w, "/app/editor/item", section, i, row); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<button class="danger" hx-post="/app/editor/item/remove" hx-vals='{"section":"%s","index":"%d"}' hx-target="#editor" hx-swap="outerHTML">Remove</button>`+"\n</fieldset>\n", section, i); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<button hx-post="/app/editor/item/add" hx-vals='{"section":"%s"}' hx-target="#editor" hx-swap="outerHTML">Add item</button>`+"\n", section); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}

func writeFieldRow(w io.Writer, action string, section pageconfig.SectionKey, index int, row fieldRow) error {
	if _, err := fmt.Fprintf(w, `<form hx-post="%s" hx-target="#editor" hx-swap="outerHTML" hx-trigger="change">
<input type="hidden" name="section" value="%s">
`, action, section); err != nil {
		return err
	}
	if index >= 0 {
		if _, err := fmt.Fprintf(w, `<input type="hidden" name="index" value="%d">`+"\n", index); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<input type="hidden" name="field" value="%s">`+"\n", row.name); err != nil {
		return err
	}

	label := templ.EscapeString(row.label)
	value := templ.EscapeString(row.value)
	var err error
	switch row.kind {
	case "textarea":
		_, err = fmt.Fprintf(w, `<label>%s <textarea name="value">%s</textarea></label>`+"\n", label, value)
	case "checkbox":
		_, err = fmt.Fprintf(w, `<input type="hidden" name="value" value="false"><label><input type="checkbox" name="value" value="true"%s> %s</label>`+"\n", checkedAttr(row.value == "true"), label)
	case "number":
		_, err = fmt.Fprintf(w, `<label>%s <input type="number" name="value" value="%s"></label>`+"\n", label, value)
	default:
		_, err = fmt.Fprintf(w, `<label>%s <input type="text" name="value" value="%s"></label>`+"\n", label, value)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "</form>\n")
	return err
}

func boolValue(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
