package listing

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RenderState tells the screen which affordance to draw.
type RenderState int

const (
	// StateLoading is shown until the first fetch resolves.
	StateLoading RenderState = iota
	// StateEmpty means no posts exist at all.
	StateEmpty
	// StateNoMatches means posts exist but none pass the filters.
	StateNoMatches
	StateReady
)

func (s RenderState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StateNoMatches:
		return "no matches"
	default:
		return "ready"
	}
}

// View is everything the post list screen needs to render.
type View struct {
	Posts []models.Post
	// Total is the size of the unfiltered collection.
	Total int
	State RenderState
	// Categories are the filter choices derived from the unfiltered
	// collection.
	Categories []models.Category
}

// Apply filters then sorts the collection according to criteria.
func Apply(c Collection, criteria Criteria) View {
	if !c.Loaded {
		return View{State: StateLoading}
	}

	posts := Sort(Filter(c.Posts, criteria), criteria.SortBy, criteria.Order)

	view := View{
		Posts:      posts,
		Total:      len(c.Posts),
		Categories: Categories(c.Posts),
		State:      StateReady,
	}
	switch {
	case len(c.Posts) == 0:
		view.State = StateEmpty
	case len(posts) == 0:
		view.State = StateNoMatches
	}

	return view
}

// Filter returns the posts passing the search, category and status
// filters, in their original order.
func Filter(posts []models.Post, criteria Criteria) []models.Post {
	term := strings.ToLower(criteria.Search)

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if matchesSearch(p, term) && matchesCategory(p, criteria.Category) && matchesStatus(p, criteria.Status) {
			out = append(out, p)
		}
	}
	return out
}

func matchesSearch(p models.Post, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Content), term) ||
		strings.Contains(strings.ToLower(p.Author), term)
}

func matchesCategory(p models.Post, category models.Category) bool {
	return category == "" || p.Category == category
}

func matchesStatus(p models.Post, status Status) bool {
	switch status {
	case StatusPublished:
		return p.Published
	case StatusDraft:
		return !p.Published
	default:
		return true
	}
}

// Sort returns a stably sorted copy of posts. Titles and authors are
// ordered by the root locale collation, so case and accents do not split
// the alphabet.
func Sort(posts []models.Post, key SortKey, order Order) []models.Post {
	out := clonePosts(posts)

	// collate.Collator is not safe for concurrent use
	compare := comparator(key, collate.New(language.Und))
	if order == Desc {
		asc := compare
		compare = func(a, b models.Post) int { return -asc(a, b) }
	}

	slices.SortStableFunc(out, compare)
	return out
}

func comparator(key SortKey, c *collate.Collator) func(a, b models.Post) int {
	switch key {
	case SortByTitle:
		return func(a, b models.Post) int { return c.CompareString(a.Title, b.Title) }
	case SortByAuthor:
		return func(a, b models.Post) int { return c.CompareString(a.Author, b.Author) }
	default:
		return func(a, b models.Post) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}

// Categories returns the distinct categories present in posts, sorted.
// Posts without a category are skipped.
func Categories(posts []models.Post) []models.Category {
	seen := make(map[models.Category]struct{}, len(posts))
	out := make([]models.Category, 0)
	for _, p := range posts {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	slices.Sort(out)
	return out
}
