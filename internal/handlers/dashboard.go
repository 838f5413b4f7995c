package handlers

import (
	"net/http"

	applog "pagehelm/internal/log"
	"pagehelm/internal/policy"
	"pagehelm/internal/views/layout"
	"pagehelm/internal/views/pages"
)

// Dashboard renders the admin console with the requested tab. Tabs the
// effective role cannot see fall back to the overview.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	data, ok := dashboardData(w, r, r.URL.Query().Get("tab"))
	if !ok {
		return
	}

	if isHTMX(r) {
		renderComponent(w, r, pages.Dashboard(data))
		return
	}
	renderComponent(w, r, layout.Base("Helm Pages", pages.Dashboard(data)))
}

func dashboardData(w http.ResponseWriter, r *http.Request, tab string) (pages.DashboardData, bool) {
	if appStore == nil {
		http.Error(w, "storage not available", http.StatusServiceUnavailable)
		return pages.DashboardData{}, false
	}

	caps, pageCount := capabilitiesFor(r)
	switch tab {
	case pages.TabPages, pages.TabOverview:
	case pages.TabPlans:
		if !caps.CanViewPlans {
			tab = pages.TabOverview
		}
	case pages.TabGenerate:
		if !caps.CanSeeAdminTabs {
			tab = pages.TabOverview
		}
	default:
		tab = pages.TabOverview
	}

	data := pages.DashboardData{
		UserName:   sessionManager.GetString(r.Context(), sessionUserNameKey),
		Role:       policy.EffectiveRole(currentRole(r), simulating(r)),
		Simulating: simulating(r),
		Caps:       caps,
		ActiveTab:  tab,
		PageCount:  pageCount,
		Flash:      popFlash(r),
	}

	pageList, err := appStore.Pages(r.Context())
	if err != nil {
		applog.Error(r.Context(), "failed to list pages", "error", err)
		http.Error(w, "failed to load pages", http.StatusInternalServerError)
		return pages.DashboardData{}, false
	}
	data.Pages = pageList

	if tab == pages.TabPlans {
		planList, err := appStore.Plans(r.Context())
		if err != nil {
			applog.Error(r.Context(), "failed to list plans", "error", err)
			http.Error(w, "failed to load plans", http.StatusInternalServerError)
			return pages.DashboardData{}, false
		}
		data.Plans = planList
	}

	return data, true
}
