package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

// ErrBusy reports that a page generation is already in flight. The caller
// should surface it and let the user retry once the current run finishes.
var ErrBusy = errors.New("ai: a page generation is already running")

type busyFlag struct {
	v atomic.Bool
}

func (b *busyFlag) acquire() bool { return b.v.CompareAndSwap(false, true) }
func (b *busyFlag) release()      { b.v.Store(false) }

// GeneratedCopy is the subject and body pair produced for email copy.
type GeneratedCopy struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// GeneratePage asks the model for a full landing-page document and returns
// the raw JSON object it produced. The result may be partial; callers merge
// it over a fully populated baseline before use. Only one generation may
// run at a time, concurrent calls fail fast with ErrBusy.
func (c *Client) GeneratePage(ctx context.Context, productName, description, fileContext string, opts FetchOptions) ([]byte, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, errors.New("ai: product name must not be empty")
	}
	description = strings.TrimSpace(description)
	fileContext = strings.TrimSpace(fileContext)
	if description == "" && fileContext == "" {
		return nil, errors.New("ai: provide a description or a context file")
	}

	if !c.generating.acquire() {
		return nil, ErrBusy
	}
	defer c.generating.release()

	payload := map[string]any{
		"model":       c.effectiveModel(opts),
		"temperature": c.temperature,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are an elite digital marketing copywriter. Respond with raw JSON only, no Markdown.",
			},
			{
				"role":    "user",
				"content": buildPagePrompt(productName, description, fileContext),
			},
		},
	}

	content, err := c.performChatCompletion(ctx, payload)
	if err != nil {
		return nil, err
	}

	raw := []byte(content)
	if !json.Valid(raw) {
		return nil, errors.New("ai: response is not valid JSON")
	}
	return raw, nil
}

// GenerateCopy asks the model for marketing email copy on a topic.
func (c *Client) GenerateCopy(ctx context.Context, topic, tone string, opts FetchOptions) (GeneratedCopy, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return GeneratedCopy{}, errors.New("ai: topic must not be empty")
	}
	tone = strings.TrimSpace(tone)
	if tone == "" {
		tone = "persuasive"
	}

	prompt := fmt.Sprintf(`Act as a copywriting expert. Write a high-converting marketing email about "%s".
The tone of voice must be %s.
Return the result as JSON with a subject line ("subject") and the body text ("body").
Strict rules: respond with raw JSON, no Markdown, no comments.`, topic, tone)

	payload := map[string]any{
		"model":       c.effectiveModel(opts),
		"temperature": c.temperature,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are an elite digital marketing copywriter. Respond with raw JSON only, no Markdown.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
	}

	content, err := c.performChatCompletion(ctx, payload)
	if err != nil {
		return GeneratedCopy{}, err
	}

	var parsed GeneratedCopy
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return GeneratedCopy{}, fmt.Errorf("ai: parse JSON payload: %w", err)
	}
	if strings.TrimSpace(parsed.Subject) == "" || strings.TrimSpace(parsed.Body) == "" {
		return GeneratedCopy{}, errors.New("ai: copy response missing subject or body")
	}
	return parsed, nil
}

func buildPagePrompt(productName, description, fileContext string) string {
	if description == "" {
		description = "(none provided, rely on the file context)"
	}
	if fileContext == "" {
		fileContext = "(none provided)"
	}
	return fmt.Sprintf(`GOAL: Write the complete content of a high-converting landing page for the product: "%s".

PRODUCT CONTEXT:
%s

ADDITIONAL INFORMATION (FROM FILE):
%s

RULES:
1. The tone must be persuasive, benefit-driven, and objection-breaking.
2. Return ONLY a JSON object.
3. The JSON structure must follow the model below EXACTLY so it works in my application.
4. Keep "enabled": true in every section.

EXPECTED JSON STRUCTURE (fill the fields with creative copy):
{
  "colors": {
    "primary": "#main_hex_color",
    "secondary": "#secondary_hex_color",
    "background": "#ffffff",
    "text": "#111827"
  },
  "hero": {
    "enabled": true,
    "badge": "Short urgency or novelty text",
    "headline": "Strong main promise",
    "subheadline": "Explanation of the promise and who it is for",
    "headlineSize": 60,
    "subheadlineSize": 20,
    "ctaButton": "Action button text",
    "ctaLink": "#pricing",
    "demoButton": "Secondary button text",
    "demoLink": "#features"
  },
  "about": {
    "enabled": true,
    "title": "Title of the 'what it is' section",
    "description": "Detailed description of the product or method",
    "image": "https://picsum.photos/600/600?random=1",
    "checklist": ["Benefit 1", "Benefit 2", "Benefit 3"]
  },
  "targetAudience": {
    "enabled": true,
    "title": "Title of the 'who it is for' section",
    "subtitle": "Short subtitle",
    "items": [
      { "title": "Profile 1", "description": "This profile's pain point" },
      { "title": "Profile 2", "description": "This profile's pain point" },
      { "title": "Profile 3", "description": "This profile's pain point" }
    ]
  },
  "features": {
    "enabled": true,
    "badge": "Differentiators",
    "title": "Differentiators title",
    "items": [
      { "title": "Differentiator 1", "description": "Description" },
      { "title": "Differentiator 2", "description": "Description" },
      { "title": "Differentiator 3", "description": "Description" }
    ]
  },
  "curriculum": {
    "enabled": true,
    "title": "Schedule or content title",
    "description": "Brief description",
    "buttonText": "See everything",
    "items": [
      { "title": "Module 1", "duration": "Length", "lessons": ["Lesson 1", "Lesson 2"] },
      { "title": "Module 2", "duration": "Length", "lessons": ["Lesson 1", "Lesson 2"] },
      { "title": "Module 3", "duration": "Length", "lessons": ["Lesson 1", "Lesson 2"] },
      { "title": "Module 4", "duration": "Length", "lessons": ["Lesson 1", "Lesson 2"] }
    ]
  },
  "bonus": {
    "enabled": true,
    "title": "Bonuses",
    "subtitle": "If there are bonuses",
    "items": [
      { "title": "Bonus 1", "description": "Description", "value": "Dollar value" },
      { "title": "Bonus 2", "description": "Description", "value": "Dollar value" },
      { "title": "Bonus 3", "description": "Description", "value": "Dollar value" }
    ]
  },
  "testimonials": {
    "enabled": true,
    "title": "Testimonials",
    "subtitle": "What people say",
    "items": [
      { "name": "Name 1", "role": "Role 1", "text": "Short positive testimonial", "image": "https://picsum.photos/100/100?random=10" },
      { "name": "Name 2", "role": "Role 2", "text": "Short positive testimonial", "image": "https://picsum.photos/100/100?random=11" },
      { "name": "Name 3", "role": "Role 3", "text": "Short positive testimonial", "image": "https://picsum.photos/100/100?random=12" }
    ]
  },
  "pricing": {
    "enabled": true,
    "title": "Final offer",
    "subtitle": "Final call to action",
    "price": "12x $XX.XX",
    "buttonText": "Buy now",
    "buttonLink": "#checkout",
    "guarantee": "X-day guarantee"
  }
}`, productName, description, fileContext)
}
