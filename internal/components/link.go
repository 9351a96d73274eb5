// Package components renders the page's building blocks as gomponents nodes.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LinkRel is set on every outbound link so the opened page gets no handle on
// the opener window and no Referer header.
const LinkRel = "noopener noreferrer"

// ExternalLink is an anchor that opens href in a new browsing context.
// children may mix attributes and content.
func ExternalLink(href string, children ...g.Node) g.Node {
	return A(append([]g.Node{Href(href), Target("_blank"), Rel(LinkRel)}, children...)...)
}
