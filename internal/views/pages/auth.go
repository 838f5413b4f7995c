package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Login renders the sign-in form. A non-empty message is shown as an
// inline error above the form.
func Login(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAuthError(w, message); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<form class="auth-form" method="post" action="/login">
<h1>Sign in</h1>
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Sign in</button>
<p><a href="/signup">Create an account</a></p>
</form>
`)
		return err
	})
}

// Signup renders the registration form with the account tier choice.
func Signup(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAuthError(w, message); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<form class="auth-form" method="post" action="/signup">
<h1>Create an account</h1>
<label>Name <input type="text" name="name" required></label>
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required minlength="8"></label>
<fieldset>
<legend>Plan</legend>
<label><input type="radio" name="tier" value="free" checked> Free, up to 2 pages, no publishing</label>
<label><input type="radio" name="tier" value="standard"> Standard</label>
</fieldset>
<button type="submit">Sign up</button>
<p><a href="/login">Already have an account?</a></p>
</form>
`)
		return err
	})
}

func writeAuthError(w io.Writer, message string) error {
	if message == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<div class="form-error" role="alert">%s</div>`+"\n", templ.EscapeString(message))
	return err
}
