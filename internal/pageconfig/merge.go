package pageconfig

import (
	"encoding/json"
	"fmt"
)

// Merge reconciles a possibly incomplete JSON document with a known-good
// baseline. The merge is deep: the partial document is unmarshalled onto a
// clone of the baseline, so any field the partial omits keeps the
// baseline's value, down to individual section fields. Lists supplied by
// the partial replace the baseline's lists wholesale.
//
// The original builder spread partial documents over the defaults one
// section at a time, which silently blanked sub-fields the AI left out of a
// present section. Deep merge is the deliberate replacement for that
// behavior.
func Merge(baseline PageConfig, partial []byte) (PageConfig, error) {
	merged := baseline.Clone()
	if len(partial) == 0 {
		return merged, nil
	}
	resetSuppliedLists(&merged, partial)
	if err := json.Unmarshal(partial, &merged); err != nil {
		return PageConfig{}, fmt.Errorf("pageconfig: merge partial document: %w", err)
	}
	merged.Hero.HeadlineSize = clampHeadlineSize(merged.Hero.HeadlineSize)
	merged.Hero.SubheadlineSize = clampSubheadlineSize(merged.Hero.SubheadlineSize)
	return merged, nil
}

// resetSuppliedLists blanks every baseline list the partial document
// supplies. json.Unmarshal patches existing slice elements in place, so
// without this a sparse supplied item would inherit leftover baseline
// fields at its index instead of replacing the list wholesale.
func resetSuppliedLists(merged *PageConfig, partial []byte) {
	var sections map[string]json.RawMessage
	if json.Unmarshal(partial, &sections) != nil {
		return
	}
	supplies := func(section SectionKey, key string) bool {
		raw, ok := sections[string(section)]
		if !ok {
			return false
		}
		var fields map[string]json.RawMessage
		if json.Unmarshal(raw, &fields) != nil {
			return false
		}
		_, ok = fields[key]
		return ok
	}
	if supplies(SectionAbout, "checklist") {
		merged.About.Checklist = nil
	}
	if supplies(SectionTargetAudience, "items") {
		merged.TargetAudience.Items = nil
	}
	if supplies(SectionFeatures, "items") {
		merged.Features.Items = nil
	}
	if supplies(SectionCurriculum, "items") {
		merged.Curriculum.Items = nil
	}
	if supplies(SectionBonus, "items") {
		merged.Bonus.Items = nil
	}
	if supplies(SectionTestimonials, "items") {
		merged.Testimonials.Items = nil
	}
}

// MergeConfig merges an already decoded partial document by re-encoding it.
// Fields at their zero value in partial are treated as supplied; callers
// holding sparse data should prefer Merge with the raw JSON.
func MergeConfig(baseline, partial PageConfig) (PageConfig, error) {
	data, err := partial.Encode()
	if err != nil {
		return PageConfig{}, err
	}
	return Merge(baseline, data)
}
