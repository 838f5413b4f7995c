package pageconfig

import (
	"reflect"
	"testing"
)

func TestUpdateFieldIsIdempotent(t *testing.T) {
	t.Parallel()

	cfg := Default()
	once, err := UpdateField(cfg, SectionHero, "badge", "X")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	twice, err := UpdateField(once, SectionHero, "badge", "X")
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatal("applying the same field update twice must equal applying it once")
	}
	if once.Hero.Badge != "X" {
		t.Fatalf("expected badge X, got %q", once.Hero.Badge)
	}
}

func TestUpdateFieldLeavesSiblingsAlone(t *testing.T) {
	t.Parallel()

	cfg := Default()
	updated, err := UpdateField(cfg, SectionPricing, "price", "$5")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !reflect.DeepEqual(updated.Hero, cfg.Hero) {
		t.Fatal("hero section changed by a pricing update")
	}
	if !reflect.DeepEqual(updated.Curriculum, cfg.Curriculum) {
		t.Fatal("curriculum section changed by a pricing update")
	}
	if updated.Pricing.Price != "$5" {
		t.Fatalf("expected price $5, got %q", updated.Pricing.Price)
	}
}

func TestPatchKeepsUntouchedSectionStorage(t *testing.T) {
	t.Parallel()

	cfg := Default()
	updated, err := UpdateField(cfg, SectionHero, "badge", "X")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if &updated.Features.Items[0] != &cfg.Features.Items[0] {
		t.Fatal("field update reallocated an untouched section's item list")
	}
	if &updated.About.Checklist[0] != &cfg.About.Checklist[0] {
		t.Fatal("field update reallocated an untouched checklist")
	}

	updated, err = UpdateListItem(cfg, SectionFeatures, 0, "title", "New")
	if err != nil {
		t.Fatalf("item update: %v", err)
	}
	if &updated.Features.Items[0] == &cfg.Features.Items[0] {
		t.Fatal("touched item list must get fresh storage")
	}
	if cfg.Features.Items[0].Title == "New" {
		t.Fatal("item update wrote through to the input document")
	}
	if &updated.Bonus.Items[0] != &cfg.Bonus.Items[0] {
		t.Fatal("item update reallocated an untouched section's item list")
	}

	updated, err = InsertListItem(cfg, SectionBonus, BonusItem{Title: "Extra"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if len(cfg.Bonus.Items) == len(updated.Bonus.Items) {
		t.Fatal("insert did not grow the copy's list")
	}
	if &updated.Testimonials.Items[0] != &cfg.Testimonials.Items[0] {
		t.Fatal("insert reallocated an untouched section's item list")
	}
}

func TestUpdateFieldValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		section SectionKey
		field   string
		value   any
	}{
		{"unknown section", SectionKey("banner"), "title", "x"},
		{"unknown field", SectionHero, "nonsense", "x"},
		{"wrong type", SectionHero, "enabled", 12},
		{"colors unknown field", SectionColors, "accent", "#fff"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := UpdateField(Default(), tt.section, tt.field, tt.value); err == nil {
				t.Fatalf("expected %s to fail", tt.name)
			}
		})
	}
}

func TestUpdateFieldCoercesFormValues(t *testing.T) {
	t.Parallel()

	cfg, err := UpdateField(Default(), SectionHero, "enabled", "false")
	if err != nil {
		t.Fatalf("bool coercion: %v", err)
	}
	if cfg.Hero.Enabled {
		t.Fatal("expected hero disabled")
	}

	cfg, err = UpdateField(cfg, SectionHero, "headlineSize", "48")
	if err != nil {
		t.Fatalf("int coercion: %v", err)
	}
	if cfg.Hero.HeadlineSize != 48 {
		t.Fatalf("expected headline size 48, got %d", cfg.Hero.HeadlineSize)
	}

	// Out-of-range sizes clamp instead of failing, matching editor-side
	// range inputs.
	cfg, err = UpdateField(cfg, SectionHero, "headlineSize", 10)
	if err != nil {
		t.Fatalf("clamp: %v", err)
	}
	if cfg.Hero.HeadlineSize != minHeadlineSize {
		t.Fatalf("expected clamp to %d, got %d", minHeadlineSize, cfg.Hero.HeadlineSize)
	}
}

func TestUpdateListItem(t *testing.T) {
	t.Parallel()

	cfg := Default()
	updated, err := UpdateListItem(cfg, SectionTestimonials, 1, "name", "New Name")
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if updated.Testimonials.Items[1].Name != "New Name" {
		t.Fatalf("expected item 1 renamed, got %q", updated.Testimonials.Items[1].Name)
	}
	if updated.Testimonials.Items[0].Name != cfg.Testimonials.Items[0].Name {
		t.Fatal("sibling item mutated")
	}

	if _, err := UpdateListItem(cfg, SectionTestimonials, 99, "name", "x"); err == nil {
		t.Fatal("expected out-of-range index to fail")
	}
	if _, err := UpdateListItem(cfg, SectionHero, 0, "name", "x"); err == nil {
		t.Fatal("expected section without items to fail")
	}
}

func TestUpdateListItemAudienceActive(t *testing.T) {
	t.Parallel()

	cfg, err := UpdateListItem(Default(), SectionTargetAudience, 0, "active", false)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cfg.TargetAudience.Items[0].Active {
		t.Fatal("expected item deactivated")
	}
}

func TestUpdateModuleLessonsFromText(t *testing.T) {
	t.Parallel()

	cfg, err := UpdateListItem(Default(), SectionCurriculum, 0, "lessons", "One\r\nTwo\nThree")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	want := []string{"One", "Two", "Three"}
	if !reflect.DeepEqual(cfg.Curriculum.Items[0].Lessons, want) {
		t.Fatalf("lessons = %v, want %v", cfg.Curriculum.Items[0].Lessons, want)
	}
}

func TestInsertAndRemoveListItem(t *testing.T) {
	t.Parallel()

	cfg := Default()
	before := len(cfg.Curriculum.Items)

	added, err := InsertListItem(cfg, SectionCurriculum, ModuleItem{Title: "New Module", Duration: "0h 0m", Lessons: []string{"Lesson 1"}})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if len(added.Curriculum.Items) != before+1 {
		t.Fatalf("expected %d modules, got %d", before+1, len(added.Curriculum.Items))
	}
	if added.Curriculum.Items[before].Title != "New Module" {
		t.Fatal("expected new module appended at the end")
	}

	removed, err := RemoveListItem(added, SectionCurriculum, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(removed.Curriculum.Items) != before {
		t.Fatalf("expected %d modules after removal, got %d", before, len(removed.Curriculum.Items))
	}
	if removed.Curriculum.Items[0].Title != added.Curriculum.Items[1].Title {
		t.Fatal("remaining modules must keep their order")
	}

	if _, err := InsertListItem(cfg, SectionCurriculum, FeatureItem{}); err == nil {
		t.Fatal("expected mismatched item type to fail")
	}
	if _, err := RemoveListItem(cfg, SectionCurriculum, -1); err == nil {
		t.Fatal("expected negative index to fail")
	}
}

func TestParseSectionKey(t *testing.T) {
	t.Parallel()

	for _, key := range SectionOrder() {
		if _, err := ParseSectionKey(string(key)); err != nil {
			t.Fatalf("expected %q to parse: %v", key, err)
		}
	}
	if _, err := ParseSectionKey("colors"); err != nil {
		t.Fatalf("expected colors to parse: %v", err)
	}
	if _, err := ParseSectionKey("footer"); err == nil {
		t.Fatal("expected unknown key to fail")
	}
}
