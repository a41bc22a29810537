// internal/app/features/utilities/views/views.go
package utilities

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "utilities",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
