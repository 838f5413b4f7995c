package layout

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderShell(t *testing.T, component templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render shell: %v", err)
	}
	return buf.String()
}

func textComponent(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestBaseRendersProvidedContent(t *testing.T) {
	out := renderShell(t, Base("Workspace", textComponent("<main>content</main>")))
	if !strings.Contains(out, "<title>Workspace</title>") {
		t.Fatalf("expected document title to be rendered: %s", out)
	}
	if !strings.Contains(out, "<main>content</main>") {
		t.Fatalf("expected content in output: %s", out)
	}
	if !strings.Contains(out, "htmx.org") {
		t.Fatalf("expected admin shell to load htmx: %s", out)
	}
}

func TestBaseEscapesTitle(t *testing.T) {
	out := renderShell(t, Base(`<script>alert("x")</script>`, textComponent("")))
	if strings.Contains(out, `<script>alert`) {
		t.Fatalf("expected title to be escaped: %s", out)
	}
}

func TestPublicShellCarriesNoAdminChrome(t *testing.T) {
	out := renderShell(t, Public("Launch", textComponent("<div>landing</div>")))
	if !strings.Contains(out, "<title>Launch</title>") {
		t.Fatalf("expected document title to be rendered: %s", out)
	}
	if strings.Contains(out, "htmx.org") {
		t.Fatalf("expected public shell to skip htmx: %s", out)
	}
	if !strings.Contains(out, "landing.css") {
		t.Fatalf("expected public stylesheet link: %s", out)
	}
}
