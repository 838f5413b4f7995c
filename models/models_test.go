package models

import (
	"reflect"
	"testing"
)

func TestNormalizeRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"admin", "ADMIN", RoleAdmin},
		{"lowercase", "user", RoleUser},
		{"padded", "  FREE_USER ", RoleFreeUser},
		{"unknown", "ROOT", RoleFreeUser},
		{"empty", "", RoleFreeUser},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeRole(tt.value); got != tt.want {
				t.Fatalf("NormalizeRole(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestPlanFeatureRoundTrip(t *testing.T) {
	t.Parallel()

	var plan Plan
	plan.SetFeatureList([]string{"A", "", "B", "C"})
	if got := plan.FeatureList(); !reflect.DeepEqual(got, []string{"A", "", "B", "C"}) {
		t.Fatalf("FeatureList = %v, want lossless round-trip", got)
	}
	if got := plan.VisibleFeatures(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("VisibleFeatures = %v, want blanks filtered", got)
	}
}

func TestPageHelpers(t *testing.T) {
	t.Parallel()

	home := Page{PageID: HomePageID, Status: PageStatusPublished}
	if !home.Protected() {
		t.Fatal("home page must be protected")
	}
	if !home.Published() {
		t.Fatal("expected published status")
	}

	draft := Page{PageID: 2, Status: PageStatusDraft}
	if draft.Protected() || draft.Published() {
		t.Fatal("draft page must be neither protected nor published")
	}

	if ValidPageStatus("archived") {
		t.Fatal("unexpected status accepted")
	}
}
