// Package page composes the portfolio document from site content.
package page

import (
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/pagimos/portfolio/internal/components"
	"github.com/pagimos/portfolio/internal/site"
)

// StylesheetPath is relative to the page so the document also works from a
// sub-path or straight off disk.
const StylesheetPath = "static/styles.css"

// App renders the whole page: hero, projects, latest posts, footer.
// It reads s and never modifies it.
func App(s *site.Site) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       s.Title,
		Description: s.Profile.Subtitle,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("stylesheet"), Href(StylesheetPath)),
		},
		Body: []g.Node{
			Div(Class("page"),
				hero(s),
				projects(s.Projects),
				posts(s.Posts),
				Footer(Class("footer"), P(g.Text(s.Footer))),
			),
		},
	})
}

// Render writes the page for s to w.
func Render(w io.Writer, s *site.Site) error {
	return App(s).Render(w)
}

func noop() {}

func hero(s *site.Site) g.Node {
	p := s.Profile
	return Header(Class("hero"),
		Div(Class("hero-avatar"),
			g.If(p.Avatar != "", Img(Class("avatar"), Src(p.Avatar), Alt(""))),
		),
		Div(Class("hero-text"),
			H1(Class("hero-name"), g.Text(p.Name)),
			g.If(p.Subtitle != "", P(Class("hero-subtitle"), g.Text(p.Subtitle))),
			Div(Class("hero-bio"), g.Raw(p.BioHTML)),
			Div(Class("social-links"),
				g.Map(s.SocialLinks, func(l site.SocialLink) g.Node {
					return components.NewSocialLink(components.SocialLinkProps{
						Href:           l.Href,
						Icon:           l.Icon,
						HoverBgClass:   l.HoverBgClass,
						IconColor:      l.IconColor,
						HoverIconColor: l.HoverIconColor,
						Label:          l.Label,
						OnMouseEnter:   noop,
						OnMouseLeave:   noop,
					})
				}),
			),
		),
	)
}

func projects(ps []site.Project) g.Node {
	return Section(Class("section projects"),
		components.SectionHeading("Projects"),
		g.Map(ps, func(p site.Project) g.Node {
			return components.ProjectCard(components.ProjectCardProps{
				Href:        p.Href,
				ImageSrc:    p.ImageSrc,
				Title:       p.Title,
				Description: p.Description,
			})
		}),
	)
}

func posts(ps []site.Post) g.Node {
	return Section(Class("section posts"),
		components.SectionHeading("Latest Posts"),
		g.Map(ps, func(p site.Post) g.Node {
			return components.PostCard(components.PostCardProps{
				Href:  p.Href,
				Title: p.Title,
				Date:  p.Date,
			})
		}),
	)
}
