package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pagimos/portfolio/internal/icon"
)

type ProjectCardProps struct {
	Href        string
	ImageSrc    string
	Title       string
	Description string
}

// ProjectCard is one project row: image, bold title, description.
func ProjectCard(p ProjectCardProps) g.Node {
	return ExternalLink(p.Href,
		Class("project-card"),
		Div(Class("project-card-image"),
			Img(Src(p.ImageSrc), Alt("")),
		),
		Div(Class("project-card-body"),
			P(Class("project-card-title"), g.Text(p.Title)),
			P(Class("project-card-description"), g.Text(p.Description)),
		),
	)
}

type PostCardProps struct {
	Href  string
	Title string
	Date  string
}

// PostCard is one post row with the title before the date.
func PostCard(p PostCardProps) g.Node {
	return ExternalLink(p.Href,
		Class("post-card"),
		Div(Class("post-card-row"),
			P(Class("post-card-title"), g.Text(p.Title)),
			P(Class("post-card-date"), g.Text(p.Date)),
		),
	)
}

// SectionHeading is a list heading with the arrow glyph on the right.
func SectionHeading(title string) g.Node {
	return Div(Class("section-heading"),
		H2(g.Text(title)),
		icon.SVG(icon.ArrowUpRight, "currentColor"),
	)
}
