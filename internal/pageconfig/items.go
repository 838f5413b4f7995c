package pageconfig

import "fmt"

func indexError(section SectionKey, index, length int) error {
	return fmt.Errorf("pageconfig: section %q has no item at index %d (len %d)", section, index, length)
}

func itemsError(section SectionKey) error {
	return fmt.Errorf("pageconfig: section %q has no item list", section)
}

// UpdateListItem returns a copy of the document with one field of the item
// at index inside the section's item list replaced. Only the touched list
// gets fresh storage; every other section keeps the input's. An
// out-of-range index is an error and the document is unchanged.
func UpdateListItem(cfg PageConfig, section SectionKey, index int, field string, value any) (PageConfig, error) {
	out := cfg
	var err error
	switch section {
	case SectionTargetAudience:
		out.TargetAudience.Items = cloneItems(cfg.TargetAudience.Items)
		err = withIndex(section, out.TargetAudience.Items, index, func(item *AudienceItem) error {
			return updateAudienceItem(item, field, value)
		})
	case SectionFeatures:
		out.Features.Items = cloneItems(cfg.Features.Items)
		err = withIndex(section, out.Features.Items, index, func(item *FeatureItem) error {
			return updateFeatureItem(item, field, value)
		})
	case SectionCurriculum:
		out.Curriculum.Items = cloneItems(cfg.Curriculum.Items)
		err = withIndex(section, out.Curriculum.Items, index, func(item *ModuleItem) error {
			return updateModuleItem(item, field, value)
		})
	case SectionBonus:
		out.Bonus.Items = cloneItems(cfg.Bonus.Items)
		err = withIndex(section, out.Bonus.Items, index, func(item *BonusItem) error {
			return updateBonusItem(item, field, value)
		})
	case SectionTestimonials:
		out.Testimonials.Items = cloneItems(cfg.Testimonials.Items)
		err = withIndex(section, out.Testimonials.Items, index, func(item *TestimonialItem) error {
			return updateTestimonialItem(item, field, value)
		})
	default:
		err = itemsError(section)
	}
	if err != nil {
		return PageConfig{}, err
	}
	return out, nil
}

func cloneItems[T any](items []T) []T {
	return append([]T(nil), items...)
}

func withIndex[T any](section SectionKey, items []T, index int, update func(*T) error) error {
	if index < 0 || index >= len(items) {
		return indexError(section, index, len(items))
	}
	return update(&items[index])
}

func updateAudienceItem(item *AudienceItem, field string, value any) error {
	switch field {
	case "title", "description":
		s, err := asString(SectionTargetAudience, field, value)
		if err != nil {
			return err
		}
		if field == "title" {
			item.Title = s
		} else {
			item.Description = s
		}
	case "active":
		b, err := asBool(SectionTargetAudience, field, value)
		if err != nil {
			return err
		}
		item.Active = b
	default:
		return fieldError(SectionTargetAudience, field)
	}
	return nil
}

func updateFeatureItem(item *FeatureItem, field string, value any) error {
	s, err := asString(SectionFeatures, field, value)
	if err != nil {
		return err
	}
	switch field {
	case "title":
		item.Title = s
	case "description":
		item.Description = s
	default:
		return fieldError(SectionFeatures, field)
	}
	return nil
}

func updateModuleItem(item *ModuleItem, field string, value any) error {
	switch field {
	case "title", "duration":
		s, err := asString(SectionCurriculum, field, value)
		if err != nil {
			return err
		}
		if field == "title" {
			item.Title = s
		} else {
			item.Duration = s
		}
	case "lessons":
		list, err := asStringList(SectionCurriculum, field, value)
		if err != nil {
			return err
		}
		item.Lessons = list
	default:
		return fieldError(SectionCurriculum, field)
	}
	return nil
}

func updateBonusItem(item *BonusItem, field string, value any) error {
	s, err := asString(SectionBonus, field, value)
	if err != nil {
		return err
	}
	switch field {
	case "title":
		item.Title = s
	case "description":
		item.Description = s
	case "value":
		item.Value = s
	default:
		return fieldError(SectionBonus, field)
	}
	return nil
}

func updateTestimonialItem(item *TestimonialItem, field string, value any) error {
	s, err := asString(SectionTestimonials, field, value)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		item.Name = s
	case "role":
		item.Role = s
	case "text":
		item.Text = s
	case "image":
		item.Image = s
	default:
		return fieldError(SectionTestimonials, field)
	}
	return nil
}

// InsertListItem appends a new item to the section's item list. The item
// type must match the section. Only the touched list gets fresh storage.
func InsertListItem(cfg PageConfig, section SectionKey, item any) (PageConfig, error) {
	out := cfg
	switch section {
	case SectionTargetAudience:
		v, ok := item.(AudienceItem)
		if !ok {
			return PageConfig{}, fmt.Errorf("pageconfig: section %q expects an AudienceItem, got %T", section, item)
		}
		out.TargetAudience.Items = appendItem(cfg.TargetAudience.Items, v)
	case SectionFeatures:
		v, ok := item.(FeatureItem)
		if !ok {
			return PageConfig{}, fmt.Errorf("pageconfig: section %q expects a FeatureItem, got %T", section, item)
		}
		out.Features.Items = appendItem(cfg.Features.Items, v)
	case SectionCurriculum:
		v, ok := item.(ModuleItem)
		if !ok {
			return PageConfig{}, fmt.Errorf("pageconfig: section %q expects a ModuleItem, got %T", section, item)
		}
		out.Curriculum.Items = appendItem(cfg.Curriculum.Items, v)
	case SectionBonus:
		v, ok := item.(BonusItem)
		if !ok {
			return PageConfig{}, fmt.Errorf("pageconfig: section %q expects a BonusItem, got %T", section, item)
		}
		out.Bonus.Items = appendItem(cfg.Bonus.Items, v)
	case SectionTestimonials:
		v, ok := item.(TestimonialItem)
		if !ok {
			return PageConfig{}, fmt.Errorf("pageconfig: section %q expects a TestimonialItem, got %T", section, item)
		}
		out.Testimonials.Items = appendItem(cfg.Testimonials.Items, v)
	default:
		return PageConfig{}, itemsError(section)
	}
	return out, nil
}

// appendItem always reallocates so the input list's backing array is never
// written through.
func appendItem[T any](items []T, item T) []T {
	return append(items[:len(items):len(items)], item)
}

// RemoveListItem drops the item at index from the section's item list,
// preserving the order of the remaining items. Only the touched list gets
// fresh storage; removeAt reallocates via its capped slice.
func RemoveListItem(cfg PageConfig, section SectionKey, index int) (PageConfig, error) {
	out := cfg
	switch section {
	case SectionTargetAudience:
		items, err := removeAt(section, out.TargetAudience.Items, index)
		if err != nil {
			return PageConfig{}, err
		}
		out.TargetAudience.Items = items
	case SectionFeatures:
		items, err := removeAt(section, out.Features.Items, index)
		if err != nil {
			return PageConfig{}, err
		}
		out.Features.Items = items
	case SectionCurriculum:
		items, err := removeAt(section, out.Curriculum.Items, index)
		if err != nil {
			return PageConfig{}, err
		}
		out.Curriculum.Items = items
	case SectionBonus:
		items, err := removeAt(section, out.Bonus.Items, index)
		if err != nil {
			return PageConfig{}, err
		}
		out.Bonus.Items = items
	case SectionTestimonials:
		items, err := removeAt(section, out.Testimonials.Items, index)
		if err != nil {
			return PageConfig{}, err
		}
		out.Testimonials.Items = items
	default:
		return PageConfig{}, itemsError(section)
	}
	return out, nil
}

func removeAt[T any](section SectionKey, items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, indexError(section, index, len(items))
	}
	return append(items[:index:index], items[index+1:]...), nil
}
