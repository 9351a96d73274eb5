package components

import (
	"io"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pagimos/portfolio/internal/icon"
)

type SocialLinkProps struct {
	Href           string
	Icon           string
	HoverBgClass   string
	IconColor      string
	HoverIconColor string
	Label          string

	// OnMouseEnter and OnMouseLeave run after the hover flag changes.
	// Nil means no-op.
	OnMouseEnter func()
	OnMouseLeave func()
}

// SocialLink is a pill-shaped outbound profile link whose icon switches to
// HoverIconColor while the pointer is over it. Each instance owns its own
// hover flag; it is not safe for concurrent use.
type SocialLink struct {
	props   SocialLinkProps
	hovered bool
}

func NewSocialLink(props SocialLinkProps) *SocialLink {
	return &SocialLink{props: props}
}

// PointerEnter marks the link hovered, then calls OnMouseEnter.
func (l *SocialLink) PointerEnter() {
	l.hovered = true
	if l.props.OnMouseEnter != nil {
		l.props.OnMouseEnter()
	}
}

// PointerLeave clears the hovered flag, then calls OnMouseLeave.
func (l *SocialLink) PointerLeave() {
	l.hovered = false
	if l.props.OnMouseLeave != nil {
		l.props.OnMouseLeave()
	}
}

func (l *SocialLink) Hovered() bool {
	return l.hovered
}

// IconColor is the color the icon is drawn in right now.
func (l *SocialLink) IconColor() string {
	if l.hovered {
		return l.props.HoverIconColor
	}
	return l.props.IconColor
}

// Render implements gomponents.Node. The custom properties on the anchor let
// the stylesheet's :hover rule make the same color swap in the browser.
func (l *SocialLink) Render(w io.Writer) error {
	p := l.props
	return ExternalLink(p.Href,
		Class(strings.TrimSpace("social-link "+p.HoverBgClass)),
		Style("--icon-color: "+p.IconColor+"; --icon-hover-color: "+p.HoverIconColor),
		Data("hovered", strconv.FormatBool(l.hovered)),
		icon.SVG(p.Icon, l.IconColor()),
		Span(g.Text(p.Label)),
	).Render(w)
}
