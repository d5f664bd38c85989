package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/listing"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type postsMode int

const (
	modeList postsMode = iota
	modeSearch
	modeDetail
	modeForm
	modeConfirm
)

// PostsModel is the home screen: the post list with search, filters and
// sorting, plus the detail view, the create/edit form and the delete
// confirmation. The list shown is always listing.Apply over the local
// collection; server results are mirrored into it without a refetch.
type PostsModel struct {
	ctx   context.Context
	posts service.ClientPostService
	auth  service.ClientAuthService

	collection listing.Collection
	criteria   listing.Criteria
	view       listing.View
	cursor     int
	loadErr    string

	mode     postsMode
	search   textinput.Model
	spinner  spinner.Model
	form     postFormModel
	detailID int64
	deleteID int64
	back     postsMode

	status string
	errMsg string

	copyToClipboard func(string) error
}

func NewPostsModel(ctx context.Context, posts service.ClientPostService, auth service.ClientAuthService) *PostsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "search title, content, author"
	search.Prompt = "/ "
	search.Width = 40

	m := &PostsModel{
		ctx:             ctx,
		posts:           posts,
		auth:            auth,
		criteria:        listing.DefaultCriteria(),
		search:          search,
		spinner:         s,
		copyToClipboard: clipboard.WriteAll,
	}
	m.refresh()
	return m
}

func (m *PostsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

// refresh recomputes the view and keeps the cursor inside it.
func (m *PostsModel) refresh() {
	m.view = listing.Apply(m.collection, m.criteria)
	if m.cursor >= len(m.view.Posts) {
		m.cursor = len(m.view.Posts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *PostsModel) selected() (models.Post, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Posts) {
		return models.Post{}, false
	}
	return m.view.Posts[m.cursor], true
}

func (m *PostsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.collection.Loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case postsLoadedMsg:
		if msg.err != nil {
			m.loadErr = humanizeError(msg.err)
			if m.collection.Loaded {
				m.errMsg = m.loadErr
			}
			return m, nil
		}
		m.loadErr = ""
		m.collection = listing.NewCollection(msg.posts)
		m.refresh()
		return m, nil

	case postCreatedMsg:
		m.form.submitting = false
		if msg.err != nil {
			return m, m.formFailed(msg.err)
		}
		m.collection = m.collection.Prepend(msg.post)
		m.refresh()
		m.mode = modeList
		return m, m.setStatus("Post created")

	case postUpdatedMsg:
		m.form.submitting = false
		if msg.err != nil {
			return m, m.formFailed(msg.err)
		}
		m.collection = m.collection.Replace(msg.post)
		m.refresh()
		m.detailID = msg.post.ID
		m.mode = m.back
		return m, m.setStatus("Post updated")

	case postDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.collection = m.collection.Remove(msg.id)
		m.refresh()
		m.mode = modeList
		return m, m.setStatus("Post deleted")

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		return m, m.setStatus("Content copied to clipboard")

	case signOutResultMsg:
		if msg.err != nil {
			m.errMsg = "Sign out failed: " + humanizeError(msg.err)
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.errMsg != "" {
			if key.Matches(msg, keys.enter, keys.esc) {
				m.errMsg = ""
			}
			return m, nil
		}

		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	switch m.mode {
	case modeSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	case modeForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m *PostsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.signOut):
		return m, m.cmdSignOut()
	case key.Matches(msg, keys.refresh):
		return m, tea.Batch(m.setStatus("Refreshing..."), m.cmdLoad())
	}

	if !m.collection.Loaded {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.view.Posts)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		if post, ok := m.selected(); ok {
			m.detailID = post.ID
			m.mode = modeDetail
		}
	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		if m.criteria.Search != "" {
			m.search.SetValue("")
			m.criteria.Search = ""
			m.refresh()
		}
	case key.Matches(msg, keys.category):
		m.criteria = m.criteria.CycleCategory(m.view.Categories)
		m.refresh()
	case key.Matches(msg, keys.status):
		m.criteria = m.criteria.CycleStatus()
		m.refresh()
	case key.Matches(msg, keys.sortDate):
		m.criteria = m.criteria.ToggleSort(listing.SortByDate)
		m.refresh()
	case key.Matches(msg, keys.sortName):
		m.criteria = m.criteria.ToggleSort(listing.SortByTitle)
		m.refresh()
	case key.Matches(msg, keys.sortAuth):
		m.criteria = m.criteria.ToggleSort(listing.SortByAuthor)
		m.refresh()
	case key.Matches(msg, keys.newPost):
		return m, m.openForm(nil)
	case key.Matches(msg, keys.edit):
		if post, ok := m.selected(); ok {
			return m, m.openForm(&post)
		}
	case key.Matches(msg, keys.delete):
		if post, ok := m.selected(); ok {
			m.askDelete(post)
		}
	case key.Matches(msg, keys.copy):
		if post, ok := m.selected(); ok {
			return m, m.cmdCopy(post.Content)
		}
	}

	return m, nil
}

func (m *PostsModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.criteria.Search = ""
		m.search.Blur()
		m.mode = modeList
		m.refresh()
		return m, nil
	case "enter":
		m.search.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.criteria.Search = m.search.Value()
	m.refresh()
	return m, cmd
}

func (m *PostsModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	post, ok := m.collection.Find(m.detailID)
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc), msg.String() == "backspace":
		m.mode = modeList
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.edit):
		return m, m.openForm(&post)
	case key.Matches(msg, keys.delete):
		m.askDelete(post)
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(post.Content)
	case key.Matches(msg, keys.signOut):
		return m, m.cmdSignOut()
	}
	return m, nil
}

func (m *PostsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, action, cmd := m.form.update(msg)
	m.form = form

	switch action {
	case formCancel:
		m.mode = m.back
		return m, nil
	case formSubmit:
		m.form.fieldErrors = nil
		m.form.submitting = true
		if m.form.editing {
			return m, m.cmdUpdate(m.form.post())
		}
		return m, m.cmdCreate(m.form.input())
	}
	return m, cmd
}

func (m *PostsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = m.back
		return m, m.cmdDelete(m.deleteID)
	case key.Matches(msg, keys.no):
		m.mode = m.back
	}
	return m, nil
}

func (m *PostsModel) openForm(post *models.Post) tea.Cmd {
	m.back = m.mode
	m.form = newPostForm(post)
	m.mode = modeForm
	return textinput.Blink
}

func (m *PostsModel) askDelete(post models.Post) {
	m.back = m.mode
	m.deleteID = post.ID
	m.mode = modeConfirm
}

// formFailed keeps the form open. Validation errors are shown per field,
// anything else in the error overlay.
func (m *PostsModel) formFailed(err error) tea.Cmd {
	if errors.Is(err, validators.ErrValidation) {
		m.form.fieldErrors = validators.FieldErrors(err)
		return nil
	}
	m.errMsg = humanizeError(err)
	return nil
}

func (m *PostsModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m *PostsModel) cmdLoad() tea.Cmd {
	ctx, posts := m.ctx, m.posts
	return func() tea.Msg {
		list, err := posts.FetchPosts(ctx)
		return postsLoadedMsg{posts: list, err: err}
	}
}

func (m *PostsModel) cmdCreate(input models.PostInput) tea.Cmd {
	ctx, posts := m.ctx, m.posts
	return func() tea.Msg {
		post, err := posts.CreatePost(ctx, input)
		return postCreatedMsg{post: post, err: err}
	}
}

func (m *PostsModel) cmdUpdate(post models.Post) tea.Cmd {
	ctx, posts := m.ctx, m.posts
	return func() tea.Msg {
		updated, err := posts.UpdatePost(ctx, post)
		return postUpdatedMsg{post: updated, err: err}
	}
}

func (m *PostsModel) cmdDelete(id int64) tea.Cmd {
	ctx, posts := m.ctx, m.posts
	return func() tea.Msg {
		return postDeletedMsg{id: id, err: posts.DeletePost(ctx, id)}
	}
}

// cmdSignOut clears the credential. On success the gate broadcast takes
// the user to the sign-in screen.
func (m *PostsModel) cmdSignOut() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return signOutResultMsg{err: auth.SignOut(ctx)}
	}
}

func (m *PostsModel) cmdCopy(content string) tea.Cmd {
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{err: copyFn(content)}
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m *PostsModel) View() string {
	if m.errMsg != "" {
		return renderPage("POSTS", errorOverlayModel{message: m.errMsg}.View(), "")
	}

	switch m.mode {
	case modeDetail:
		if post, ok := m.collection.Find(m.detailID); ok {
			return renderPage("POST", renderPostDetail(post), "esc: back │ e: edit │ d: delete │ y: copy content")
		}
	case modeForm:
		return renderPage("POST", m.form.View(), "tab: next field │ ←/→: category │ space: published │ enter or ctrl+s: save │ esc: cancel")
	case modeConfirm:
		title := ""
		if post, ok := m.collection.Find(m.deleteID); ok {
			title = post.Title
		}
		return renderPage("POSTS", confirmModel{title: title}.View(), "")
	}

	return renderPage("POSTS", m.listView(),
		"/: search │ c: category │ s: status │ 1/2/3: sort by date/title/author │ n: new │ e: edit │ d: delete │ y: copy │ r: refresh │ ctrl+l: sign out │ q: quit")
}

func (m *PostsModel) listView() string {
	var b strings.Builder

	if m.mode == modeSearch || m.criteria.Search != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString(m.criteriaLine())
	b.WriteString("\n\n")

	switch m.view.State {
	case listing.StateLoading:
		if m.loadErr != "" {
			b.WriteString(errorStyle.Render("Could not load posts: " + m.loadErr))
			b.WriteString("\npress r to retry")
		} else {
			b.WriteString(m.spinner.View() + " Loading posts...")
		}
	case listing.StateEmpty:
		b.WriteString("No posts yet. Press n to write the first one.")
	case listing.StateNoMatches:
		b.WriteString(countLine(m.view))
		b.WriteString("\n\nNo posts match the current search and filters.")
	default:
		b.WriteString(countLine(m.view))
		b.WriteString("\n\n")
		for i, post := range m.view.Posts {
			b.WriteString(m.row(i, post))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(m.status))
	}

	return strings.TrimRight(b.String(), "\n")
}

func countLine(view listing.View) string {
	return fmt.Sprintf("%d of %d posts", len(view.Posts), view.Total)
}

func (m *PostsModel) criteriaLine() string {
	category := "all"
	if m.criteria.Category != "" {
		category = string(m.criteria.Category)
	}
	arrow := "↓"
	if m.criteria.Order == listing.Asc {
		arrow = "↑"
	}
	return helpStyle.Render(fmt.Sprintf("category: %s · status: %s · sort: %s %s",
		category, m.criteria.Status, m.criteria.SortBy, arrow))
}

func (m *PostsModel) row(i int, post models.Post) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	line := fmt.Sprintf("%s%s · %s · %s · %s",
		cursor,
		fitText(post.Title, 40),
		fitText(valueOrDash(post.Author), 20),
		valueOrDash(string(post.Category)),
		formatDate(post.CreatedAt),
	)
	if !post.Published {
		line += " " + draftStyle.Render("(draft)")
	}
	if i == m.cursor {
		return selectedStyle.Render(line)
	}
	return line
}
