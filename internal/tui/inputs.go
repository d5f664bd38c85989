package tui

import "github.com/charmbracelet/bubbles/textinput"

// inputGroup is a list of text inputs with a single focused one.
type inputGroup struct {
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder string, charLimit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func newInputGroup(inputs ...textinput.Model) inputGroup {
	g := inputGroup{inputs: inputs}
	if len(g.inputs) > 0 {
		g.inputs[0].Focus()
	}
	return g
}

func (g *inputGroup) next() {
	g.inputs[g.focus].Blur()
	g.focus = (g.focus + 1) % len(g.inputs)
	g.inputs[g.focus].Focus()
}

func (g *inputGroup) prev() {
	g.inputs[g.focus].Blur()
	g.focus = (g.focus - 1 + len(g.inputs)) % len(g.inputs)
	g.inputs[g.focus].Focus()
}

func (g *inputGroup) value(i int) string {
	return g.inputs[i].Value()
}
