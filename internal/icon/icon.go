// Package icon holds the inline SVG glyphs the page can reference by name.
package icon

import (
	"sort"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	GitHub       = "github"
	LinkedIn     = "linkedin"
	Instagram    = "instagram"
	Twitter      = "twitter"
	ArrowUpRight = "arrow-up-right"
)

// Stroked 24x24 outline glyphs.
var glyphs = map[string]string{
	GitHub: `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,

	LinkedIn: `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"/><rect width="4" height="12" x="2" y="9"/><circle cx="4" cy="4" r="2"/>`,

	Instagram: `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"/><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"/><line x1="17.5" x2="17.51" y1="6.5" y2="6.5"/>`,

	Twitter: `<path d="M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z"/>`,

	ArrowUpRight: `<path d="M7 7h10v10"/><path d="M7 17 17 7"/>`,
}

// Known reports whether name is a registered glyph.
func Known(name string) bool {
	_, ok := glyphs[name]
	return ok
}

// Names returns the registered glyph names in sorted order.
func Names() []string {
	names := make([]string, 0, len(glyphs))
	for name := range glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SVG renders the named glyph stroked in color. Unknown names render an
// empty svg so a bad reference degrades to blank space.
func SVG(name, color string) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", "24"),
		g.Attr("height", "24"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", color),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		h.Class("icon icon-"+name),
		h.Aria("hidden", "true"),
		g.Raw(glyphs[name]),
	)
}
