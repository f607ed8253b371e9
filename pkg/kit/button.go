package kit

import (
	"strconv"

	"github.com/glintui/glint/pkg/component"
)

// ButtonProps configures a Button.
type ButtonProps struct {
	Label    string `yaml:"label"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Pressed is emitted on the owning context's emitter when an enabled button
// is pressed.
type Pressed struct {
	Label string
}

// Button is a pressable control. Press delivers a Pressed event through the
// context emitter; a disabled button swallows presses.
type Button struct {
	component.Base[ButtonProps]
	ctx   *component.Context
	props ButtonProps
}

// NewButton constructs a Button.
func NewButton(props ButtonProps, ctx *component.Context) *Button {
	return &Button{ctx: ctx, props: props}
}

func (b *Button) Update(next ButtonProps) error {
	b.props = next
	return nil
}

// Press emits Pressed unless the button is disabled. It reports whether the
// event was delivered.
func (b *Button) Press() bool {
	if b.props.Disabled {
		return false
	}
	b.ctx.Events().Emit(Pressed{Label: b.props.Label})
	return true
}

func (b *Button) Render() ([]*component.Node, error) {
	node := component.NewNode(nil)
	node.SetAttribute("label", b.props.Label)
	node.SetAttribute("disabled", strconv.FormatBool(b.props.Disabled))
	return []*component.Node{node}, nil
}
