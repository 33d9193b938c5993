package email

import (
	"html/template"
	"strings"
)

const welcomeTemplate = `<html>
<body>
  <h2>Welcome to FestacConnect{{if .FirstName}}, {{.FirstName}}{{end}}!</h2>
  <p>Your neighborhood marketplace, business directory and community feed are ready.</p>
  <p>Post a listing, review a local business or say hello on the community feed.</p>
</body>
</html>`

func renderTemplate(tmpl string, data map[string]any) (string, error) {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}

	builder := &strings.Builder{}
	if err := t.Execute(builder, data); err != nil {
		return "", err
	}

	return builder.String(), nil
}
