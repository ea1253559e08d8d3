package components

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/pthm/hxtodo"
	"github.com/pthm/hxtodo/lib/store"
)

// PageTitle is the document title and heading.
const PageTitle = "ToDos App"

// nextID picks the successor of the largest rendered id, or 0 for an empty
// list. Two clients can compute the same id; the server answers the loser
// with 400 and the form's error handler reports it.
const nextID = "js:{ id: Math.max(-1, ...[...document.querySelectorAll('#" + TodosID +
	" li')].map((e) => parseInt(e.id))) + 1 }"

// PageProps defines the props for the Page component.
type PageProps struct {
	Todos   []store.Record
	Counter int64
}

// Page is the full index document.
var Page = hxtodo.New("page", func(p PageProps) templ.Component {
	refresh := hxtodo.NewAction("/todos", http.MethodGet).
		Target("#" + TodosID).
		Indicator("#" + SpinnerID).
		Attrs()

	add := hxtodo.NewAction("/todos", http.MethodPost).
		Vars(nextID).
		Target("#"+TodosID+" > ul").
		Swap(hxtodo.SwapBeforeEnd).
		On("htmx:after-request", "this.reset()").
		On("htmx:response-error", "alert('error: ' + event.detail.xhr.status)").
		Attrs()

	return Layout.With(LayoutProps{
		Title: PageTitle,
		Children: hxtodo.Fragment(
			hxtodo.Element("h1", nil, hxtodo.Text(PageTitle)),
			hxtodo.Element("button", refresh, hxtodo.Text("refresh")),
			hxtodo.Element("form", add,
				hxtodo.Void("input", templ.Attributes{"type": "text", "name": "text"}),
				hxtodo.Element("button", templ.Attributes{"type": "submit"}, hxtodo.Text("add")),
			),
			hxtodo.Element("div", templ.Attributes{"id": TodosID},
				TodoList.With(TodoListProps{Todos: p.Todos}),
			),
			hxtodo.Void("img", templ.Attributes{
				"id":    SpinnerID,
				"class": "htmx-indicator",
				"src":   "https://i.gifer.com/ZKZg.gif",
				"width": 40,
			}),
			Counter.With(CounterProps{Value: p.Counter}),
		),
	})
})
