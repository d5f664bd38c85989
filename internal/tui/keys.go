package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the post list bindings. Forms read raw key strings.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	search   key.Binding
	category key.Binding
	status   key.Binding
	sortDate key.Binding
	sortName key.Binding
	sortAuth key.Binding
	newPost  key.Binding
	edit     key.Binding
	delete   key.Binding
	refresh  key.Binding
	copy     key.Binding
	signOut  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q")),
	search:   key.NewBinding(key.WithKeys("/")),
	category: key.NewBinding(key.WithKeys("c")),
	status:   key.NewBinding(key.WithKeys("s")),
	sortDate: key.NewBinding(key.WithKeys("1")),
	sortName: key.NewBinding(key.WithKeys("2")),
	sortAuth: key.NewBinding(key.WithKeys("3")),
	newPost:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("y")),
	signOut:  key.NewBinding(key.WithKeys("ctrl+l")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
