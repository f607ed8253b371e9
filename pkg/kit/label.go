package kit

import (
	"github.com/glintui/glint/pkg/component"
)

// LabelProps configures a Label.
type LabelProps struct {
	Text string `yaml:"text"`
	// Color is a ParseColor-compatible string. Empty falls back to the
	// provided theme's foreground.
	Color string `yaml:"color,omitempty"`
}

// Label displays a line of text.
type Label struct {
	component.Base[LabelProps]
	ctx   *component.Context
	props LabelProps
}

// NewLabel constructs a Label.
func NewLabel(props LabelProps, ctx *component.Context) *Label {
	return &Label{ctx: ctx, props: props}
}

func (l *Label) Update(next LabelProps) error {
	l.props = next
	return nil
}

// Render produces a single text node carrying the resolved color.
func (l *Label) Render() ([]*component.Node, error) {
	color, err := l.resolveColor()
	if err != nil {
		return nil, err
	}
	node := component.NewNode(nil)
	node.SetAttribute("text", l.props.Text)
	node.SetAttribute("color", color.Hex())
	return []*component.Node{node}, nil
}

func (l *Label) resolveColor() (Color, error) {
	if l.props.Color != "" {
		return ParseColor(l.props.Color)
	}
	if theme, ok := component.Shared[Theme](l.ctx); ok {
		return theme.Foreground, nil
	}
	return DefaultTheme().Foreground, nil
}
