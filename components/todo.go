package components

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pthm/hxtodo"
	"github.com/pthm/hxtodo/lib/store"
)

// TodoItemProps defines the props for the TodoItem component.
type TodoItemProps struct {
	Todo store.Record
}

// TodoItem renders one record as an editable list item.
//
// The <li> carries the record id as its DOM id. The delete button targets
// "closest li" and the add form computes the next id from these ids, so the
// attribute must stay on the outermost element.
var TodoItem = hxtodo.New("todoitem", func(p TodoItemProps) templ.Component {
	id := strconv.FormatUint(p.Todo.ID, 10)
	path := TodoPath(p.Todo.ID)

	edit := hxtodo.NewAction(path, http.MethodPut).
		Vals(map[string]string{"id": id}).
		Attrs()

	remove := hxtodo.NewAction(path, http.MethodDelete).
		TargetClosest("li").
		Swap(hxtodo.SwapOuter).
		Attrs()

	return hxtodo.Element("li", templ.Attributes{"id": id},
		hxtodo.Void("input", hxtodo.MergeAttrs(edit, templ.Attributes{
			"name":  "text",
			"value": p.Todo.Text,
		})),
		hxtodo.Element("button", remove, hxtodo.Text("delete")),
	)
})

// TodoListProps defines the props for the TodoList component.
type TodoListProps struct {
	Todos []store.Record
}

// TodoList renders records in the order given.
var TodoList = hxtodo.New("todolist", func(p TodoListProps) templ.Component {
	return hxtodo.Element("ul", nil,
		hxtodo.Repeat(p.Todos, func(r store.Record) templ.Component {
			return TodoItem.With(TodoItemProps{Todo: r})
		}),
	)
})

// TodoPath returns the URL addressing a single record.
func TodoPath(id uint64) string {
	return "/todos/" + strconv.FormatUint(id, 10)
}
