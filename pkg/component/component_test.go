package component

import "strconv"

// Shared test fixtures: a counter component and a second props shape used to
// provoke mismatches.

type counterProps struct {
	Start int
}

type labelProps struct {
	Text string
}

type testCounter struct {
	Base[counterProps]
	count int

	initCalls   int
	mountCalls  int
	updateCalls int

	vetoNext     bool
	failMount    bool
	panicOnNext  bool
	unmountCalls int
}

func newTestCounter(props counterProps, ctx *Context) *testCounter {
	return &testCounter{count: props.Start}
}

func (c *testCounter) Initialize() error {
	c.initCalls++
	return nil
}

func (c *testCounter) Mount() error {
	c.mountCalls++
	if c.failMount {
		return errFailedMount
	}
	return nil
}

func (c *testCounter) BeforeUpdate(next counterProps) error {
	if c.vetoNext {
		return errVetoed
	}
	return nil
}

func (c *testCounter) Update(next counterProps) error {
	if c.panicOnNext {
		panic("update exploded")
	}
	c.count = next.Start
	c.updateCalls++
	return nil
}

func (c *testCounter) Unmount() error {
	c.unmountCalls++
	return nil
}

func (c *testCounter) Render() ([]*Node, error) {
	node := NewNode(nil)
	node.SetAttribute("count", strconv.Itoa(c.count))
	return []*Node{node}, nil
}

type testLabel struct {
	Base[labelProps]
	text string
}

func newTestLabel(props labelProps, ctx *Context) *testLabel {
	return &testLabel{text: props.Text}
}

func (l *testLabel) Update(next labelProps) error {
	l.text = next.Text
	return nil
}

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

const (
	errVetoed      = sentinelError("vetoed")
	errFailedMount = sentinelError("mount failed")
)
