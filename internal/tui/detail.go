package tui

import (
	"strings"

	"github.com/MKhiriev/go-blog-keeper/models"
)

func renderPostDetail(post models.Post) string {
	status := "published"
	if !post.Published {
		status = "draft"
	}

	var b strings.Builder
	b.WriteString(selectedStyle.Render(post.Title))
	b.WriteString("\n")
	b.WriteString("by " + valueOrDash(post.Author))
	b.WriteString(" · " + valueOrDash(string(post.Category)))
	b.WriteString(" · " + status)
	b.WriteString("\n")
	b.WriteString("created " + formatDate(post.CreatedAt))
	if !post.UpdatedAt.IsZero() && !post.UpdatedAt.Equal(post.CreatedAt) {
		b.WriteString(" · updated " + formatDate(post.UpdatedAt))
	}
	b.WriteString("\n")
	if tags := strings.TrimSpace(post.Tags); tags != "" {
		b.WriteString("tags: " + tags + "\n")
	}
	b.WriteString("\n")
	b.WriteString(renderMarkdown(post.Content))

	return b.String()
}
