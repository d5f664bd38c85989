// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// SignInModel is the Bubble Tea model for the sign-in screen. It renders
// email and password inputs and dispatches an async sign-in command on
// enter. Success needs no handling here: the gate broadcasts the new
// credential and RootModel moves on to the post list.
type SignInModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputGroup
	submitting bool
	errMsg     string
	notice     string
}

func NewSignInModel(ctx context.Context, auth service.ClientAuthService) *SignInModel {
	return &SignInModel{
		ctx:  ctx,
		auth: auth,
		form: newInputGroup(
			newInput("email", 254),
			newPasswordInput("password"),
		),
	}
}

func (m *SignInModel) Init() tea.Cmd {
	return nil
}

func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil

	case signUpNoticeMsg:
		m.notice = msg.message
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+n":
			return m, func() tea.Msg { return NavigateTo{Path: session.PathSignUp} }
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

			email := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			if email == "" || password == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdSignIn(email, password)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *SignInModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: sign in │ ctrl+n: create account")
}

func (m *SignInModel) cmdSignIn(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return signInResultMsg{err: auth.SignIn(ctx, email, password)}
	}
}
