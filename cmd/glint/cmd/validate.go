package cmd

import (
	"fmt"

	"github.com/glintui/glint/pkg/blueprint"
	"github.com/glintui/glint/pkg/component"
	"github.com/glintui/glint/pkg/kit"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check a blueprint against the kit registry",
		Long: `Validate parses the blueprint document, checks its format version,
and builds it against the kit registry without mounting anything.`,
		Usage: "glint validate <blueprint.yaml>",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("validate requires exactly one blueprint file")
	}

	doc, err := blueprint.LoadFile(args[0])
	if err != nil {
		return err
	}

	registry := component.NewRegistry()
	kit.RegisterAll(registry)
	tree := component.NewTree(registry, component.NewContext())
	if _, err := blueprint.Build(doc, tree); err != nil {
		return err
	}

	fmt.Printf("%s: OK (format %s)\n", args[0], doc.Version)
	return nil
}
