package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/session"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	signUpName = iota
	signUpEmail
	signUpPassword
	signUpProfileURL
)

var signUpFields = []string{validators.FieldName, validators.FieldEmail, validators.FieldPassword, ""}

// SignUpModel is the registration screen. Validation runs in the auth
// service before any request is sent; its per-field messages are shown
// next to the inputs. On success the user is sent back to sign-in with a
// notice.
type SignUpModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form        inputGroup
	submitting  bool
	errMsg      string
	fieldErrors map[string]string
}

func NewSignUpModel(ctx context.Context, auth service.ClientAuthService) *SignUpModel {
	return &SignUpModel{
		ctx:  ctx,
		auth: auth,
		form: newInputGroup(
			newInput("name", validators.NameMaxLength),
			newInput("email", 254),
			newPasswordInput("password"),
			newInput("https://example.com/me.png (optional)", 512),
		),
	}
}

func (m *SignUpModel) Init() tea.Cmd {
	return nil
}

func (m *SignUpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signUpResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.fieldErrors = validators.FieldErrors(msg.err)
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}

		notice := msg.message
		if notice == "" {
			notice = "Registration complete"
		}
		return m, func() tea.Msg {
			return NavigateTo{
				Path:    session.PathSignIn,
				Payload: signUpNoticeMsg{message: notice + ", please sign in"},
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Path: session.PathSignIn} }
		case "tab", "down":
			m.form.next()
			return m, nil
		case "shift+tab", "up":
			m.form.prev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			m.errMsg = ""
			m.fieldErrors = nil
			m.submitting = true
			return m, m.cmdSignUp(m.request())
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *SignUpModel) request() models.SignUpRequest {
	return models.SignUpRequest{
		Name:       strings.TrimSpace(m.form.value(signUpName)),
		Email:      strings.TrimSpace(m.form.value(signUpEmail)),
		Password:   m.form.value(signUpPassword),
		ProfileURL: strings.TrimSpace(m.form.value(signUpProfileURL)),
	}
}

func (m *SignUpModel) View() string {
	labels := []string{"Name", "Email", "Password", "Profile URL"}

	var b strings.Builder
	b.WriteString("Field        │ Value\n")
	b.WriteString("─────────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 13-len(label)))
		b.WriteString("│ [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
		if msg := m.fieldErrors[signUpFields[i]]; msg != "" && signUpFields[i] != "" {
			b.WriteString("             │ ")
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" && len(m.fieldErrors) == 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *SignUpModel) cmdSignUp(req models.SignUpRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		message, err := auth.SignUp(ctx, req)
		return signUpResultMsg{message: message, err: err}
	}
}
