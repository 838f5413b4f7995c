package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"pagehelm/internal/policy"
	"pagehelm/models"
)

// PlansPanel renders the plan cards. Admins additionally get the inline
// edit forms; the message slot surfaces rule violations such as trying to
// deactivate the popular plan.
func PlansPanel(plans []models.Plan, caps policy.Capabilities, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="panel panel-plans">`+"\n"); err != nil {
			return err
		}
		if message != "" {
			if _, err := fmt.Fprintf(w, `<div class="plan-message" role="alert">%s</div>`+"\n", templ.EscapeString(message)); err != nil {
				return err
			}
		}
		for _, plan := range plans {
			if err := writePlanCard(w, plan, caps.CanSeeAdminTabs); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>\n")
		return err
	})
}

func writePlanCard(w io.Writer, plan models.Plan, editable bool) error {
	class := "plan-card"
	if plan.Popular {
		class += " plan-popular"
	}
	if !plan.Active {
		class += " plan-inactive"
	}
	if _, err := fmt.Fprintf(w, `<div class="%s" style="border-color:%s">`+"\n", class, SafeColor(plan.Color, "#d1d5db")); err != nil {
		return err
	}
	if plan.Popular {
		if _, err := io.WriteString(w, `<span class="plan-badge">Most popular</span>`+"\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<h3>%s</h3><div class="plan-price">%s <span>/%s</span></div><p>%s</p>`+"\n",
		templ.EscapeString(plan.Name), templ.EscapeString(plan.Price), templ.EscapeString(plan.Period), templ.EscapeString(plan.Description)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<ul class="plan-features">`+"\n"); err != nil {
		return err
	}
	for _, feature := range plan.VisibleFeatures() {
		if _, err := fmt.Fprintf(w, "<li>%s</li>\n", templ.EscapeString(feature)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</ul>\n"); err != nil {
		return err
	}
	if editable {
		if err := writePlanEditor(w, plan); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}

func writePlanEditor(w io.Writer, plan models.Plan) error {
	key := templ.EscapeString(plan.Key)
	if _, err := fmt.Fprintf(w, `<details class="plan-editor"><summary>Edit</summary>
<form method="post" action="/app/plans/%s">
<label>Name <input type="text" name="name" value="%s"></label>
<label>Price <input type="text" name="price" value="%s"></label>
<label>Billing period <input type="text" name="period" value="%s"></label>
<label>Description <input type="text" name="description" value="%s"></label>
<label>Color <input type="text" name="color" value="%s"></label>
<label>Features, one per line <textarea name="features">%s</textarea></label>
<label><input type="checkbox" name="popular" value="true"%s> Popular</label>
<label><input type="checkbox" name="active" value="true"%s> Active</label>
<button type="submit">Save plan</button>
</form>
</details>
`,
		key,
		templ.EscapeString(plan.Name),
		templ.EscapeString(plan.Price),
		templ.EscapeString(plan.Period),
		templ.EscapeString(plan.Description),
		templ.EscapeString(plan.Color),
		templ.EscapeString(plan.Features),
		checkedAttr(plan.Popular),
		checkedAttr(plan.Active)); err != nil {
		return err
	}
	return nil
}

func checkedAttr(value bool) string {
	if value {
		return " checked"
	}
	return ""
}
