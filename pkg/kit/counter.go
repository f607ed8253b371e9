package kit

import (
	"strconv"

	"github.com/glintui/glint/pkg/component"
)

// CounterProps configures a Counter.
type CounterProps struct {
	Start int `yaml:"start"`
}

// Counter tracks an integer value seeded from its props. Each props update
// reseeds the count; Increment advances it locally.
type Counter struct {
	component.Base[CounterProps]
	count int
}

// NewCounter constructs a Counter.
func NewCounter(props CounterProps, ctx *component.Context) *Counter {
	return &Counter{count: props.Start}
}

func (c *Counter) Update(next CounterProps) error {
	c.count = next.Start
	return nil
}

// Increment advances the count by one.
func (c *Counter) Increment() {
	c.count++
}

// Count reports the current value.
func (c *Counter) Count() int {
	return c.count
}

func (c *Counter) Render() ([]*component.Node, error) {
	node := component.NewNode(nil)
	node.SetAttribute("count", strconv.Itoa(c.count))
	return []*component.Node{node}, nil
}
