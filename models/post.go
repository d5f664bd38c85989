package models

import "time"

// Category is the fixed set of topics a post can belong to.
type Category string

const (
	CategoryTechnology    Category = "Technology"
	CategoryLifestyle     Category = "Lifestyle"
	CategoryTravel        Category = "Travel"
	CategoryFood          Category = "Food"
	CategoryHealth        Category = "Health"
	CategoryBusiness      Category = "Business"
	CategoryEducation     Category = "Education"
	CategoryEntertainment Category = "Entertainment"
)

var allCategories = []Category{
	CategoryTechnology,
	CategoryLifestyle,
	CategoryTravel,
	CategoryFood,
	CategoryHealth,
	CategoryBusiness,
	CategoryEducation,
	CategoryEntertainment,
}

// AllCategories returns every known category in declaration order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Post is a blog entry. It is owned by the server store; clients hold
// a read-through copy.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  Category  `json:"category"`
	Tags      string    `json:"tags"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// Input returns the writable subset of the post.
func (p Post) Input() PostInput {
	published := p.Published
	return PostInput{
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		Category:  p.Category,
		Tags:      p.Tags,
		Published: &published,
	}
}

// PostInput is the body accepted by the create and update endpoints.
// Published is a pointer so a missing value can be told apart from false.
type PostInput struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Category  Category `json:"category"`
	Tags      string   `json:"tags"`
	Published *bool    `json:"published"`
}

// Post converts the input into a [Post] without identifiers or timestamps.
func (in PostInput) Post() Post {
	p := Post{
		Title:    in.Title,
		Content:  in.Content,
		Author:   in.Author,
		Category: in.Category,
		Tags:     in.Tags,
	}
	if in.Published != nil {
		p.Published = *in.Published
	}
	return p
}
