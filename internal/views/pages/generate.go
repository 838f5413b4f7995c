package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// GeneratePanel renders the AI page-generation form. The busy state is
// handled server side; a rejected run comes back as an inline message.
func GeneratePanel(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message != "" {
			if _, err := fmt.Fprintf(w, `<div class="form-error" role="alert">%s</div>`+"\n", templ.EscapeString(message)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<div class="panel panel-generate">
<form method="post" action="/app/generate" enctype="multipart/form-data">
<h2>Generate a landing page</h2>
<label>Product name <input type="text" name="product" required></label>
<label>Description <textarea name="description" rows="6" placeholder="What is the product, who is it for, what does it promise?"></textarea></label>
<label>Context file, optional <input type="file" name="context" accept=".txt,.md,.pdf"></label>
<button type="submit">Generate</button>
</form>
</div>
`)
		return err
	})
}

// GenerateReview renders the preview-and-confirm step after a successful
// generation. The produced document is held server side; this form only
// decides its fate.
func GenerateReview(title string, preview templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="panel panel-generate-review">
<form method="post" action="/app/generate/accept">
<label>Page title <input type="text" name="title" value="%s" required></label>
<button type="submit">Create page</button>
<button type="submit" formaction="/app/generate/discard" class="secondary">Discard</button>
</form>
<div class="generate-preview">
`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := preview.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div>\n</div>\n")
		return err
	})
}
