package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeHTML = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2d1f;">
    <h2>Welcome to Caxora, {{.Name}}!</h2>
    <p>Your account <strong>{{.Username}}</strong> has been created.</p>
    <p>You can now sign in to manage your farm profile and monitoring
    dashboard.</p>
    <p style="color: #6b7c6b; font-size: 12px;">If you did not create this
    account, please contact support.</p>
  </body>
</html>`))

// Render produces subject, text, and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "welcome":
		var buf bytes.Buffer
		if err = welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to Caxora"
		text = fmt.Sprintf("Welcome to Caxora, %v! Your account %v has been created.",
			data["Name"], data["Username"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
