package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcomeTemplate(t *testing.T) {
	body, err := renderTemplate(welcomeTemplate, map[string]any{"FirstName": "Ada"})
	require.NoError(t, err)
	assert.Contains(t, body, "Welcome to FestacConnect, Ada!")

	body, err = renderTemplate(welcomeTemplate, map[string]any{"FirstName": ""})
	require.NoError(t, err)
	assert.Contains(t, body, "Welcome to FestacConnect!")
}

func TestRenderTemplate_EscapesHTML(t *testing.T) {
	body, err := renderTemplate(welcomeTemplate, map[string]any{"FirstName": "<script>"})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
