package tui

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/session"
	"github.com/MKhiriev/go-blog-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// sessionView is the part of the gate the root model reads.
type sessionView interface {
	session.Validity
	Identity(ctx context.Context) (models.Identity, bool)
}

type pageFactory func() tea.Model

// RootModel is a TUI router:
// 1) resolves every requested path through session.Router
// 2) re-resolves the current path when the credential changes
// 3) handles global ctrl+c quit and the build info window, which also
// asks the server for its version
// 4) delegates all other messages to the active page
//
// Pages are rebuilt on every navigation so no state survives a sign-out.
type RootModel struct {
	ctx     context.Context
	session sessionView
	router  *session.Router
	pages   map[string]pageFactory

	path     string
	current  tea.Model
	identity models.Identity
	signedIn bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	info          service.ClientInfoService
	serverVersion string
}

func NewRootModel(ctx context.Context, services *service.ClientServices, gate sessionView, buildInfo models.AppBuildInfo) RootModel {
	pages := map[string]pageFactory{
		session.PathSignIn: func() tea.Model { return NewSignInModel(ctx, services.AuthService) },
		session.PathSignUp: func() tea.Model { return NewSignUpModel(ctx, services.AuthService) },
		session.PathHome:   func() tea.Model { return NewPostsModel(ctx, services.PostService, services.AuthService) },
	}
	r := newRootModel(ctx, gate, pages, buildInfo)
	r.info = services.InfoService
	return r
}

func newRootModel(ctx context.Context, gate sessionView, pages map[string]pageFactory, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		ctx:       ctx,
		session:   gate,
		router:    session.NewRouter(gate),
		pages:     pages,
		buildInfo: buildInfo,
	}
	r, _ = r.navigate(session.PathHome)
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "f1":
			r.showBuildInfo = !r.showBuildInfo
			if r.showBuildInfo {
				return r, r.cmdServerVersion()
			}
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case serverVersionMsg:
		r.serverVersion = msg.version
		if msg.err != nil {
			r.serverVersion = "unavailable"
		}
		return r, nil

	case sessionChangedMsg:
		return r.navigate(r.path)

	case NavigateTo:
		r.showBuildInfo = false
		next, cmd := r.navigate(msg.Path)
		if msg.Payload != nil {
			payload := msg.Payload
			cmd = tea.Batch(cmd, func() tea.Msg { return payload })
		}
		return next, cmd
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// navigate opens the page the router picks for path. Asking for the page
// that is already open only refreshes the identity header.
func (r RootModel) navigate(path string) (RootModel, tea.Cmd) {
	resolved := r.router.Resolve(r.ctx, path)
	r.identity, r.signedIn = r.session.Identity(r.ctx)

	if resolved == r.path && r.current != nil {
		return r, nil
	}

	factory, ok := r.pages[resolved]
	if !ok {
		return r, nil
	}

	r.path = resolved
	r.current = factory()
	return r, r.current.Init()
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	if r.info == nil {
		return nil
	}
	ctx, info := r.ctx, r.info
	return func() tea.Msg {
		version, err := info.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

// Path returns the path of the open page.
func (r RootModel) Path() string {
	return r.path
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}

	header := renderHeader(r.identity, r.signedIn)
	if r.current == nil {
		return header + "\n" + renderPage("BLOG KEEPER", "", "")
	}
	return header + "\n" + r.current.View()
}
