package tui

import (
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldCategory
	fieldTags
	fieldPublished
	fieldContent
	fieldCount
)

type formAction int

const (
	formNone formAction = iota
	formCancel
	formSubmit
)

// postFormModel is the create/edit form. Category is picked with
// left/right, published is toggled with space.
type postFormModel struct {
	editing  bool
	original models.Post

	title   textinput.Model
	author  textinput.Model
	tags    textinput.Model
	content textarea.Model

	categories  []models.Category
	categoryIdx int // -1 = not chosen
	published   bool

	focus       int
	submitting  bool
	fieldErrors map[string]string
}

func newPostForm(post *models.Post) postFormModel {
	m := postFormModel{
		title:       newInput("title", validators.TitleMaxLength),
		author:      newInput("author", 100),
		tags:        newInput("go, testing", 200),
		content:     textarea.New(),
		categories:  models.AllCategories(),
		categoryIdx: -1,
	}
	m.content.Placeholder = "Markdown content"
	m.content.SetWidth(60)
	m.content.SetHeight(8)
	m.content.CharLimit = 0

	if post != nil {
		m.editing = true
		m.original = *post
		m.title.SetValue(post.Title)
		m.author.SetValue(post.Author)
		m.tags.SetValue(post.Tags)
		m.content.SetValue(post.Content)
		m.published = post.Published
		for i, c := range m.categories {
			if c == post.Category {
				m.categoryIdx = i
			}
		}
	}

	m.applyFocus()
	return m
}

func (m *postFormModel) applyFocus() {
	m.title.Blur()
	m.author.Blur()
	m.tags.Blur()
	m.content.Blur()

	switch m.focus {
	case fieldTitle:
		m.title.Focus()
	case fieldAuthor:
		m.author.Focus()
	case fieldTags:
		m.tags.Focus()
	case fieldContent:
		m.content.Focus()
	}
}

func (m postFormModel) update(msg tea.Msg) (postFormModel, formAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.submitting {
			return m, formNone, nil
		}

		switch keyMsg.String() {
		case "esc":
			return m, formCancel, nil
		case "ctrl+s":
			return m, formSubmit, nil
		case "tab":
			m.focus = (m.focus + 1) % fieldCount
			m.applyFocus()
			return m, formNone, nil
		case "shift+tab":
			m.focus = (m.focus - 1 + fieldCount) % fieldCount
			m.applyFocus()
			return m, formNone, nil
		case "enter":
			if m.focus != fieldContent {
				return m, formSubmit, nil
			}
		}

		switch m.focus {
		case fieldCategory:
			switch keyMsg.String() {
			case "left", "h":
				m.categoryIdx--
				if m.categoryIdx < -1 {
					m.categoryIdx = len(m.categories) - 1
				}
			case "right", "l", " ":
				m.categoryIdx++
				if m.categoryIdx >= len(m.categories) {
					m.categoryIdx = -1
				}
			}
			return m, formNone, nil
		case fieldPublished:
			if keyMsg.String() == " " || keyMsg.String() == "x" {
				m.published = !m.published
			}
			return m, formNone, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldAuthor:
		m.author, cmd = m.author.Update(msg)
	case fieldTags:
		m.tags, cmd = m.tags.Update(msg)
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
	}
	return m, formNone, cmd
}

func (m postFormModel) category() models.Category {
	if m.categoryIdx < 0 || m.categoryIdx >= len(m.categories) {
		return ""
	}
	return m.categories[m.categoryIdx]
}

// input returns the trimmed form values.
func (m postFormModel) input() models.PostInput {
	published := m.published
	return models.PostInput{
		Title:     strings.TrimSpace(m.title.Value()),
		Content:   strings.TrimSpace(m.content.Value()),
		Author:    strings.TrimSpace(m.author.Value()),
		Category:  m.category(),
		Tags:      strings.TrimSpace(m.tags.Value()),
		Published: &published,
	}
}

// post is the edited post: identifiers and timestamps come from the
// original, everything else from the form.
func (m postFormModel) post() models.Post {
	p := m.input().Post()
	p.ID = m.original.ID
	p.UserID = m.original.UserID
	p.CreatedAt = m.original.CreatedAt
	p.UpdatedAt = m.original.UpdatedAt
	return p
}

func (m postFormModel) View() string {
	title := "New post"
	if m.editing {
		title = "Edit: " + fitText(m.original.Title, 40)
	}

	category := "‹ choose ›"
	if c := m.category(); c != "" {
		category = "‹ " + string(c) + " ›"
	}
	published := "[ ] published"
	if m.published {
		published = "[x] published"
	}

	rows := []struct {
		label string
		field string
		view  string
	}{
		{"Title", validators.FieldTitle, "[" + m.title.View() + "]"},
		{"Author", validators.FieldAuthor, "[" + m.author.View() + "]"},
		{"Category", validators.FieldCategory, category},
		{"Tags", validators.FieldTags, "[" + m.tags.View() + "]"},
		{"Status", validators.FieldPublished, published},
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")
	for i, row := range rows {
		cursor := "  "
		if m.focus == i {
			cursor = "> "
		}
		b.WriteString(cursor + row.label + strings.Repeat(" ", 10-len(row.label)) + row.view + "\n")
		if msg := m.fieldErrors[row.field]; msg != "" {
			b.WriteString("            " + errorStyle.Render(msg) + "\n")
		}
	}

	cursor := "  "
	if m.focus == fieldContent {
		cursor = "> "
	}
	b.WriteString(cursor + "Content\n")
	b.WriteString(m.content.View() + "\n")
	if msg := m.fieldErrors[validators.FieldContent]; msg != "" {
		b.WriteString("            " + errorStyle.Render(msg) + "\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
