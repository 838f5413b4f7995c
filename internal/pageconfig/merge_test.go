package pageconfig

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestMergeRoundTripsFullDocument(t *testing.T) {
	t.Parallel()

	full := Default()
	full.Hero.Headline = "A completely different headline"
	full.Pricing.Price = "$1"
	full.TargetAudience.Items[1].Active = false

	data, err := full.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	baseline := Default()
	baseline.Hero.Headline = "baseline noise"

	merged, err := Merge(baseline, data)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !reflect.DeepEqual(merged, full) {
		t.Fatalf("merge of a full document must reproduce it\ngot:  %+v\nwant: %+v", merged, full)
	}
}

func TestMergeFillsGapsFromBaseline(t *testing.T) {
	t.Parallel()

	partial := []byte(`{"hero":{"enabled":true,"badge":"X"}}`)
	baseline := Default()

	merged, err := Merge(baseline, partial)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	if merged.Hero.Badge != "X" {
		t.Fatalf("expected partial badge to win, got %q", merged.Hero.Badge)
	}
	// Deep merge: fields the partial hero omitted keep the baseline values.
	if merged.Hero.DemoButton != baseline.Hero.DemoButton {
		t.Fatalf("expected baseline demoButton to survive, got %q", merged.Hero.DemoButton)
	}
	if merged.Hero.HeadlineSize != baseline.Hero.HeadlineSize {
		t.Fatalf("expected baseline headlineSize to survive, got %d", merged.Hero.HeadlineSize)
	}
	if !reflect.DeepEqual(merged.Pricing, baseline.Pricing) {
		t.Fatal("expected untouched pricing section to equal baseline")
	}
	if !reflect.DeepEqual(merged.Testimonials, baseline.Testimonials) {
		t.Fatal("expected untouched testimonials section to equal baseline")
	}
}

func TestMergeReplacesSuppliedListsWholesale(t *testing.T) {
	t.Parallel()

	partial := []byte(`{"features":{"enabled":true,"items":[{"title":"Only one","description":"left"}]}}`)
	merged, err := Merge(Default(), partial)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(merged.Features.Items) != 1 || merged.Features.Items[0].Title != "Only one" {
		t.Fatalf("expected supplied list to replace the baseline list, got %+v", merged.Features.Items)
	}
}

func TestMergeSparseListItemsCarryNoBaselineFields(t *testing.T) {
	t.Parallel()

	// A supplied item that omits a field must not inherit the value the
	// baseline item held at the same index.
	partial := []byte(`{"features":{"items":[{"title":"Only one"}]}}`)
	merged, err := Merge(Default(), partial)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(merged.Features.Items) != 1 {
		t.Fatalf("expected one feature item, got %d", len(merged.Features.Items))
	}
	if got := merged.Features.Items[0].Description; got != "" {
		t.Fatalf("sparse item inherited baseline description %q", got)
	}

	partial = []byte(`{"targetAudience":{"items":[{"title":"Solo"}]},"about":{"checklist":["one"]}}`)
	merged, err = Merge(Default(), partial)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(merged.TargetAudience.Items) != 1 || merged.TargetAudience.Items[0].Description != "" {
		t.Fatalf("sparse audience item carried baseline fields: %+v", merged.TargetAudience.Items)
	}
	if !merged.TargetAudience.Items[0].Active {
		t.Fatal("sparse audience item must default to active")
	}
	if len(merged.About.Checklist) != 1 || merged.About.Checklist[0] != "one" {
		t.Fatalf("supplied checklist must replace the baseline's, got %+v", merged.About.Checklist)
	}
}

func TestMergeClampsSizes(t *testing.T) {
	t.Parallel()

	merged, err := Merge(Default(), []byte(`{"hero":{"headlineSize":999,"subheadlineSize":1}}`))
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if merged.Hero.HeadlineSize != maxHeadlineSize {
		t.Fatalf("expected headline size clamped to %d, got %d", maxHeadlineSize, merged.Hero.HeadlineSize)
	}
	if merged.Hero.SubheadlineSize != minSubheadlineSize {
		t.Fatalf("expected subheadline size clamped to %d, got %d", minSubheadlineSize, merged.Hero.SubheadlineSize)
	}
}

func TestMergeRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	if _, err := Merge(Default(), []byte(`{"hero":`)); err == nil {
		t.Fatal("expected malformed JSON to fail")
	}
}

func TestAudienceItemActiveDefaultsToTrue(t *testing.T) {
	t.Parallel()

	var item AudienceItem
	if err := json.Unmarshal([]byte(`{"title":"T","description":"D"}`), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !item.Active {
		t.Fatal("expected absent active to decode as true")
	}

	if err := json.Unmarshal([]byte(`{"title":"T","active":false}`), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if item.Active {
		t.Fatal("expected explicit false to decode as false")
	}
}

func TestDecodeEmptyReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Decode(nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatal("expected empty payload to decode to the default document")
	}
}

func TestDefaultIsFullyPopulated(t *testing.T) {
	t.Parallel()

	cfg := Default()
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, key := range SectionOrder() {
		if !strings.Contains(string(data), `"`+string(key)+`"`) {
			t.Fatalf("default document missing section %q", key)
		}
	}
	if len(cfg.TargetAudience.Items) == 0 || len(cfg.Curriculum.Items) == 0 ||
		len(cfg.Features.Items) == 0 || len(cfg.Bonus.Items) == 0 ||
		len(cfg.Testimonials.Items) == 0 {
		t.Fatal("default document must populate every item list")
	}
	for _, item := range cfg.TargetAudience.Items {
		if !item.Active {
			t.Fatal("default audience items must be active")
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := Default()
	clone := original.Clone()
	clone.Curriculum.Items[0].Lessons[0] = "mutated"
	clone.About.Checklist[0] = "mutated"

	if original.Curriculum.Items[0].Lessons[0] == "mutated" {
		t.Fatal("clone shares lesson storage with the original")
	}
	if original.About.Checklist[0] == "mutated" {
		t.Fatal("clone shares checklist storage with the original")
	}
}
