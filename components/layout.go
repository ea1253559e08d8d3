package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/hxtodo"
)

// htmx release loaded by the layout, pinned by subresource integrity.
const (
	htmxSrc       = "https://unpkg.com/htmx.org@1.9.5"
	htmxIntegrity = "sha384-xcuj3WpfgjlKF+FXhSQFQ0ZNr39ln+hwjN3npfM9VBnUskLolQAcN80McRIVOPuO"
)

// LayoutProps defines the props for the Layout component.
type LayoutProps struct {
	Title    string
	Children templ.Component
}

// Layout wraps children in a full HTML document with htmx loaded.
var Layout = hxtodo.New("layout", func(p LayoutProps) templ.Component {
	return hxtodo.Fragment(
		hxtodo.Doctype(),
		hxtodo.Element("html", nil,
			hxtodo.Element("head", nil,
				hxtodo.Element("title", nil, hxtodo.Text(p.Title)),
				hxtodo.Element("script", templ.Attributes{
					"src":         htmxSrc,
					"integrity":   htmxIntegrity,
					"crossorigin": "anonymous",
				}),
				hxtodo.Void("meta", templ.Attributes{"name": "color-scheme", "content": "dark light"}),
			),
			hxtodo.Element("body", nil,
				hxtodo.Element("main", nil, p.Children),
			),
		),
	)
})
