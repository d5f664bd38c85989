package listing

import "github.com/MKhiriev/go-blog-keeper/models"

// Status filters posts by publication state.
type Status int

const (
	StatusAll Status = iota
	StatusPublished
	StatusDraft
)

func (s Status) String() string {
	switch s {
	case StatusPublished:
		return "published"
	case StatusDraft:
		return "draft"
	default:
		return "all"
	}
}

// SortKey selects the field posts are ordered by.
type SortKey int

const (
	SortByDate SortKey = iota
	SortByTitle
	SortByAuthor
)

func (k SortKey) String() string {
	switch k {
	case SortByTitle:
		return "title"
	case SortByAuthor:
		return "author"
	default:
		return "date"
	}
}

// Order is the sort direction.
type Order int

const (
	Desc Order = iota
	Asc
)

func (o Order) String() string {
	if o == Asc {
		return "asc"
	}
	return "desc"
}

// Criteria is the user-chosen filter and sort configuration.
// An empty Search or Category disables that filter.
type Criteria struct {
	Search   string
	Category models.Category
	Status   Status
	SortBy   SortKey
	Order    Order
}

// DefaultCriteria shows every post, newest first.
func DefaultCriteria() Criteria {
	return Criteria{SortBy: SortByDate, Order: Desc}
}

// ToggleSort re-selecting the current key flips the direction,
// choosing another key sorts by it ascending.
func (c Criteria) ToggleSort(key SortKey) Criteria {
	if c.SortBy == key {
		if c.Order == Asc {
			c.Order = Desc
		} else {
			c.Order = Asc
		}
		return c
	}

	c.SortBy = key
	c.Order = Asc
	return c
}

// CycleStatus steps all -> published -> draft -> all.
func (c Criteria) CycleStatus() Criteria {
	switch c.Status {
	case StatusAll:
		c.Status = StatusPublished
	case StatusPublished:
		c.Status = StatusDraft
	default:
		c.Status = StatusAll
	}
	return c
}

// CycleCategory steps through "all" followed by choices in order. A
// category missing from choices restarts the cycle at "all".
func (c Criteria) CycleCategory(choices []models.Category) Criteria {
	if c.Category == "" {
		if len(choices) > 0 {
			c.Category = choices[0]
		}
		return c
	}

	for i, choice := range choices {
		if choice == c.Category && i+1 < len(choices) {
			c.Category = choices[i+1]
			return c
		}
	}

	c.Category = ""
	return c
}
