// Package blueprint loads declarative YAML documents describing a component
// tree and builds them against a registry. A document names registered
// components, supplies their props and attributes, and nests children; Build
// instantiates the tree with every component initialized and ready to mount.
package blueprint

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/coreos/go-semver/semver"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/glintui/glint/pkg/component"
	"github.com/glintui/glint/pkg/errors"
)

// SupportedMajor is the document format major version this package builds.
// Documents declaring a different major are rejected; minor and patch
// differences within the major are accepted.
const SupportedMajor = 1

// Document is a parsed blueprint.
type Document struct {
	Version string   `yaml:"version"`
	Root    NodeSpec `yaml:"root"`
}

// NodeSpec describes one node in the document tree.
type NodeSpec struct {
	// Component is the registered component name, optionally qualified with
	// an import path ("example.com/kit.Button"). Empty means a plain element
	// node with no component.
	Component  string            `yaml:"component,omitempty"`
	Props      map[string]any    `yaml:"props,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Children   []NodeSpec        `yaml:"children,omitempty"`
}

// Parse decodes a blueprint document from YAML bytes.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &errors.BlueprintError{Path: "document", Reason: "invalid YAML", Err: err}
	}
	if strings.TrimSpace(doc.Version) == "" {
		return nil, &errors.BlueprintError{Path: "version", Reason: "missing version"}
	}
	return &doc, nil
}

// Load reads and parses a blueprint document.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint: %w", err)
	}
	return Parse(data)
}

// LoadFile reads and parses a blueprint document from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Build validates the document version, instantiates every named component
// through the tree's registry, and assembles the node tree. The built root is
// installed on the tree and returned; components are initialized but not
// mounted, so the caller decides when MountAll runs.
func Build(doc *Document, tree *component.Tree) (*component.Node, error) {
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	root, err := buildNode(&doc.Root, tree, "root")
	if err != nil {
		return nil, err
	}
	tree.SetRoot(root)
	return root, nil
}

func checkVersion(raw string) error {
	v, err := semver.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return &errors.BlueprintError{Path: "version", Reason: fmt.Sprintf("invalid version %q", raw), Err: err}
	}
	if v.Major != SupportedMajor {
		return &errors.BlueprintError{
			Path:   "version",
			Reason: fmt.Sprintf("unsupported major version %d (supported: %d)", v.Major, SupportedMajor),
		}
	}
	return nil
}

func buildNode(spec *NodeSpec, tree *component.Tree, path string) (*component.Node, error) {
	node, err := instantiate(spec, tree, path)
	if err != nil {
		return nil, err
	}
	for i := range spec.Children {
		child, err := buildNode(&spec.Children[i], tree, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}

func instantiate(spec *NodeSpec, tree *component.Tree, path string) (*component.Node, error) {
	if spec.Component == "" {
		node := component.NewNode(nil)
		for k, v := range spec.Attributes {
			node.SetAttribute(k, v)
		}
		return node, nil
	}

	name, err := resolveName(spec.Component, path)
	if err != nil {
		return nil, err
	}

	props, err := decodeProps(tree.Registry(), name, spec.Props, path)
	if err != nil {
		return nil, err
	}
	return tree.NewNodeByName(name, props, spec.Attributes)
}

// resolveName splits an optionally path-qualified component reference. The
// import-path portion of "example.com/kit.Button" is validated and stripped;
// lookup uses the trailing "kit.Button".
func resolveName(ref, path string) (string, error) {
	slash := strings.LastIndex(ref, "/")
	if slash < 0 {
		return ref, nil
	}

	dot := strings.Index(ref[slash:], ".")
	if dot < 0 {
		return "", &errors.BlueprintError{
			Path:   path,
			Reason: fmt.Sprintf("qualified reference %q has no component name", ref),
		}
	}
	importPath := ref[:slash+dot]
	if err := module.CheckImportPath(importPath); err != nil {
		return "", &errors.BlueprintError{
			Path:   path,
			Reason: fmt.Sprintf("invalid import path in reference %q", ref),
			Err:    err,
		}
	}
	name := ref[strings.LastIndex(importPath, "/")+1:]
	return name, nil
}

// decodeProps turns the document's free-form props map into a value of the
// component's registered props type by a YAML round-trip into a freshly
// allocated value. An absent props map decodes to the zero value.
func decodeProps(registry *component.Registry, name string, raw map[string]any, path string) (component.Props, error) {
	propsType, ok := registry.PropsTypeFor(name)
	if !ok {
		return nil, &errors.TypeNotFoundError{Key: name}
	}

	target := reflect.New(propsType)
	if len(raw) > 0 {
		data, err := yaml.Marshal(raw)
		if err != nil {
			return nil, &errors.BlueprintError{Path: path, Reason: "unencodable props", Err: err}
		}
		if err := yaml.Unmarshal(data, target.Interface()); err != nil {
			return nil, &errors.BlueprintError{
				Path:   path,
				Reason: fmt.Sprintf("props do not decode into %s", propsType),
				Err:    err,
			}
		}
	}
	return component.FromValue(target.Elem().Interface()), nil
}
