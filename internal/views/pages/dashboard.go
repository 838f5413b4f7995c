package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"pagehelm/internal/policy"
	"pagehelm/models"
)

// Dashboard tab identifiers.
const (
	TabOverview = "overview"
	TabPages    = "pages"
	TabPlans    = "plans"
	TabGenerate = "generate"
)

// DashboardData carries everything the console shell needs for one render.
type DashboardData struct {
	UserName   string
	Role       string
	Simulating bool
	Caps       policy.Capabilities
	ActiveTab  string

	Pages     []models.Page
	PageCount int64
	Flash     string

	Plans       []models.Plan
	PlanMessage string

	GenerateError string
}

// Dashboard renders the admin console shell with the active tab's panel.
func Dashboard(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="dashboard">`+"\n"); err != nil {
			return err
		}
		if err := writeHeader(w, data); err != nil {
			return err
		}
		if err := writeTabs(w, data); err != nil {
			return err
		}
		if data.Flash != "" {
			if _, err := fmt.Fprintf(w, `<div class="flash">%s</div>`+"\n", templ.EscapeString(data.Flash)); err != nil {
				return err
			}
		}

		var err error
		switch data.ActiveTab {
		case TabPages:
			err = writePagesPanel(w, data)
		case TabPlans:
			err = PlansPanel(data.Plans, data.Caps, data.PlanMessage).Render(ctx, w)
		case TabGenerate:
			err = GeneratePanel(data.GenerateError).Render(ctx, w)
		default:
			err = writeOverviewPanel(w, data)
		}
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, "</div>\n")
		return err
	})
}

func writeHeader(w io.Writer, data DashboardData) error {
	if _, err := fmt.Fprintf(w, `<header class="dashboard-header"><span class="user-name">%s</span><span class="user-role">%s</span><a href="/logout">Sign out</a></header>`+"\n",
		templ.EscapeString(data.UserName), templ.EscapeString(data.Role)); err != nil {
		return err
	}
	if data.Simulating {
		if _, err := io.WriteString(w, `<div class="simulation-banner">Viewing as USER. Admin controls are hidden.
<form method="post" action="/app/simulate/exit"><button type="submit">Exit simulation</button></form>
</div>
`); err != nil {
			return err
		}
	}
	if data.Caps.MaxPages != policy.Unlimited {
		if _, err := fmt.Fprintf(w, `<div class="tier-banner">Free plan: %d of %d pages used. Publishing requires an upgrade.</div>`+"\n",
			data.PageCount, data.Caps.MaxPages); err != nil {
			return err
		}
	}
	return nil
}

func writeTabs(w io.Writer, data DashboardData) error {
	type tab struct {
		id      string
		label   string
		visible bool
	}
	tabs := []tab{
		{TabOverview, "Overview", true},
		{TabPages, "My Pages", true},
		{TabPlans, "Plans", data.Caps.CanViewPlans},
		{TabGenerate, "AI Generator", data.Caps.CanSeeAdminTabs},
	}

	if _, err := io.WriteString(w, `<nav class="dashboard-tabs">`+"\n"); err != nil {
		return err
	}
	for _, entry := range tabs {
		if !entry.visible {
			continue
		}
		class := "tab"
		if entry.id == data.ActiveTab {
			class = "tab tab-active"
		}
		if _, err := fmt.Fprintf(w, `<a class="%s" href="/app?tab=%s">%s</a>`+"\n", class, entry.id, entry.label); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</nav>\n")
	return err
}

func writeOverviewPanel(w io.Writer, data DashboardData) error {
	published := 0
	for _, page := range data.Pages {
		if page.Published() {
			published++
		}
	}
	_, err := fmt.Fprintf(w, `<div class="panel panel-overview">
<div class="stat"><span class="stat-value">%d</span><span class="stat-label">Pages</span></div>
<div class="stat"><span class="stat-value">%d</span><span class="stat-label">Published</span></div>
</div>
`, len(data.Pages), published)
	return err
}

func writePagesPanel(w io.Writer, data DashboardData) error {
	if _, err := io.WriteString(w, `<div class="panel panel-pages">`+"\n"); err != nil {
		return err
	}
	if data.Caps.CanCreatePage && (data.Caps.MaxPages == policy.Unlimited || data.PageCount < int64(data.Caps.MaxPages)) {
		if _, err := io.WriteString(w, `<form method="post" action="/app/pages"><input type="text" name="title" placeholder="New page title"><button type="submit">Create page</button></form>`+"\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `<table class="page-list"><thead><tr><th>Title</th><th>Status</th><th>Modified</th><th></th></tr></thead><tbody>`+"\n"); err != nil {
		return err
	}
	for _, page := range data.Pages {
		if err := writePageRow(w, page, data.Caps); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</tbody></table>\n</div>\n")
	return err
}

func writePageRow(w io.Writer, page models.Page, caps policy.Capabilities) error {
	if _, err := fmt.Fprintf(w, `<tr><td><a href="%s">%s</a></td><td>%s</td><td>%s</td><td>`,
		templ.EscapeString(page.URL), templ.EscapeString(page.Title), templ.EscapeString(page.Status), templ.EscapeString(page.LastModified)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<a class="button" href="/app/editor/%d">Edit</a>`, page.PageID); err != nil {
		return err
	}
	if caps.CanPublish {
		action := "publish"
		label := "Publish"
		if page.Published() {
			action = "unpublish"
			label = "Unpublish"
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="/app/pages/%d/%s"><button type="submit">%s</button></form>`, page.PageID, action, label); err != nil {
			return err
		}
	}
	if !page.Protected() {
		if _, err := fmt.Fprintf(w, `<form method="post" action="/app/pages/%d/delete"><button type="submit" class="danger">Delete</button></form>`, page.PageID); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</td></tr>\n")
	return err
}
