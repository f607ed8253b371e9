package cmd

import (
	"fmt"
	"strings"

	"github.com/glintui/glint/pkg/blueprint"
	"github.com/glintui/glint/pkg/component"
	"github.com/glintui/glint/pkg/kit"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Build a blueprint and print the mounted tree",
		Long: `Preview builds the blueprint document against the kit registry,
mounts every component, and prints the resulting node tree.`,
		Usage: "glint preview <blueprint.yaml>",
		Run:   runPreview,
	})
}

func runPreview(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("preview requires exactly one blueprint file")
	}

	doc, err := blueprint.LoadFile(args[0])
	if err != nil {
		return err
	}

	registry := component.NewRegistry()
	kit.RegisterAll(registry)
	ctx := component.NewContext()
	component.Provide(ctx, kit.DefaultTheme())
	tree := component.NewTree(registry, ctx)

	root, err := blueprint.Build(doc, tree)
	if err != nil {
		return err
	}
	if err := tree.MountAll(); err != nil {
		return err
	}
	defer tree.UnmountAll()

	printNode(tree, root, 0)
	return nil
}

func printNode(tree *component.Tree, node *component.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	name := "element"
	if inst := node.Component(); inst != nil {
		name = inst.ComponentType().String()
	}
	fmt.Printf("%s%s #%d %s\n", indent, name, node.ID(), formatAttrs(node.Attributes()))

	if tree.ManagerFor(node.ID()) != nil {
		if rendered, err := tree.Render(node.ID()); err == nil {
			for _, child := range rendered {
				printNode(tree, child, depth+1)
			}
		}
	}
	for _, child := range node.Children() {
		printNode(tree, child, depth+1)
	}
}

func formatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(attrs))
	for k, v := range attrs {
		parts = append(parts, fmt.Sprintf("%s=%q", k, v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
