// Package kit provides the built-in components: Label, Button, and Counter,
// plus the shared Theme palette they resolve styling defaults from.
package kit

import "github.com/glintui/glint/pkg/component"

// RegisterAll installs every kit component under its canonical name.
func RegisterAll(r *component.Registry) {
	component.Register(r, "kit.Label", NewLabel)
	component.Register(r, "kit.Button", NewButton)
	component.Register(r, "kit.Counter", NewCounter)
}
