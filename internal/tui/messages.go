package tui

import (
	"github.com/MKhiriev/go-blog-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks RootModel to open Path. The router may redirect it.
// Payload, when set, is delivered to the opened page.
type NavigateTo struct {
	Path    string
	Payload tea.Msg
}

// sessionChangedMsg is sent after every gate broadcast.
type sessionChangedMsg struct{}

type signInResultMsg struct {
	err error
}

type signUpResultMsg struct {
	message string
	err     error
}

// signUpNoticeMsg is handed to the sign-in page after a registration.
type signUpNoticeMsg struct {
	message string
}

type postsLoadedMsg struct {
	posts []models.Post
	err   error
}

type postCreatedMsg struct {
	post models.Post
	err  error
}

type postUpdatedMsg struct {
	post models.Post
	err  error
}

type postDeletedMsg struct {
	id  int64
	err error
}

type signOutResultMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type serverVersionMsg struct {
	version string
	err     error
}
