package main

import (
	"github.com/seldom-dev/seldom/pkg/preview"
	"github.com/seldom-dev/seldom/pkg/vdom"
)

// demoSite is the built-in showcase served by `seldom preview` and
// written by `seldom export` when run outside a project.
func demoSite() preview.Site {
	return preview.Site{
		{Route: "/", Title: "Seldom", Render: homePage},
		{Route: "/gallery", Title: "Gallery", Render: galleryPage},
		{Route: "/about", Title: "About", Render: aboutPage},
	}
}

func homePage() *vdom.VNode {
	return vdom.El("main#app.page",
		navBar("/"),
		vdom.El("section.hero",
			vdom.El("h1", "Seldom"),
			vdom.El("p.tagline", "Selector-driven HTML generation for Go"),
			vdom.El("pre.example",
				vdom.El("code", `El("button#save.primary", "Save changes")`),
			),
		),
	)
}

func galleryPage() *vdom.VNode {
	people := []struct {
		ID, Name, Bio string
	}{
		{"ada", "Ada Lovelace", "Mathematician"},
		{"grace", "Grace Hopper", "Rear admiral"},
		{"edsger", "Edsger Dijkstra", "Computer scientist"},
	}

	return vdom.El("main#app.page",
		navBar("/gallery"),
		vdom.El("h1", "Gallery"),
		vdom.El("ul.cards", func(list *vdom.VNode) {
			for _, p := range people {
				list.Children = append(list.Children,
					vdom.El("li.card",
						vdom.Props{"data-user": p.ID},
						vdom.El("h2", p.Name),
						vdom.El("p.bio", p.Bio),
					),
				)
			}
		}),
	)
}

func aboutPage() *vdom.VNode {
	return vdom.El("main#app.page",
		navBar("/about"),
		vdom.El("article.prose",
			vdom.El("h1", "About"),
			vdom.El("p",
				"Seldom builds element trees from CSS-style selectors ",
				"and renders them as HTML.",
			),
		),
	)
}

// navBar marks the active route with an extra class.
func navBar(active string) *vdom.VNode {
	links := []struct {
		Href, Label string
	}{
		{"/", "Home"},
		{"/gallery", "Gallery"},
		{"/about", "About"},
	}

	return vdom.El("nav.site-nav", func(nav *vdom.VNode) {
		for _, l := range links {
			link := vdom.El("a", l.Label, vdom.Href(l.Href))
			if l.Href == active {
				link = vdom.El("a.active", l.Label, vdom.Href(l.Href))
			}
			nav.Children = append(nav.Children, link)
		}
	})
}
