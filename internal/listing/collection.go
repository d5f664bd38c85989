package listing

import "github.com/MKhiriev/go-blog-keeper/models"

// Collection is the client's copy of the server's posts. The zero value
// means the first fetch has not completed yet, which is not the same as
// a loaded collection with no posts.
type Collection struct {
	Posts  []models.Post
	Loaded bool
}

// NewCollection returns a loaded collection holding a copy of posts.
func NewCollection(posts []models.Post) Collection {
	return Collection{Posts: clonePosts(posts), Loaded: true}
}

// Len is the number of posts held.
func (c Collection) Len() int {
	return len(c.Posts)
}

// Prepend returns a collection with post added in front.
func (c Collection) Prepend(post models.Post) Collection {
	posts := make([]models.Post, 0, len(c.Posts)+1)
	posts = append(posts, post)
	posts = append(posts, c.Posts...)
	return Collection{Posts: posts, Loaded: true}
}

// Replace returns a collection where the post with the same ID is swapped
// for post. Unknown IDs leave the collection unchanged.
func (c Collection) Replace(post models.Post) Collection {
	posts := clonePosts(c.Posts)
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			break
		}
	}
	return Collection{Posts: posts, Loaded: c.Loaded}
}

// Remove returns a collection without the post with id.
func (c Collection) Remove(id int64) Collection {
	posts := make([]models.Post, 0, len(c.Posts))
	for _, p := range c.Posts {
		if p.ID != id {
			posts = append(posts, p)
		}
	}
	return Collection{Posts: posts, Loaded: c.Loaded}
}

// Find returns the post with id.
func (c Collection) Find(id int64) (models.Post, bool) {
	for _, p := range c.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

func clonePosts(posts []models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	return out
}
