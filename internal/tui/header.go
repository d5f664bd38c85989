package tui

import "github.com/MKhiriev/go-blog-keeper/models"

// renderHeader shows who is signed in. The identity is decoded from the
// credential on every navigation and never cached beyond that.
func renderHeader(identity models.Identity, signedIn bool) string {
	if !signedIn {
		return headerStyle.Render("Blog Keeper · not signed in")
	}

	line := "Blog Keeper · " + valueOrDash(identity.Name)
	if identity.Email != "" {
		line += " <" + identity.Email + ">"
	}
	return headerStyle.Render(line)
}
