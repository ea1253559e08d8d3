// Package hxtodo provides the pieces of a small server-rendered htmx
// application: typed components that render HTML fragments, and an ordered
// route table that turns (method, path, body) into a rendered Result.
//
// # Components
//
// A component is a pure function from a props struct to a templ.Component.
// Props may themselves hold components, which is how trees are built:
//
//	var TodoList = hxtodo.New("todolist", func(p TodoListProps) templ.Component {
//	    return hxtodo.Element("ul", nil,
//	        hxtodo.Repeat(p.Todos, func(r store.Record) templ.Component {
//	            return TodoItem.With(TodoItemProps{Todo: r})
//	        }),
//	    )
//	})
//
// Components never read shared state. Handlers take a snapshot from the
// store and pass it in, so a render can run without holding any lock and
// equal props always produce byte-identical output.
//
// # Routing
//
// Routes are registered in order and matched method first, then path; the
// first match wins:
//
//	rt := hxtodo.NewRouter()
//	rt.GET("/todos", s.listTodos)
//	rt.POST("/todos", s.createTodo).Form("id", "text")
//	rt.DELETE("/todos/{id:uint}", s.deleteTodo)
//
// A {name:uint} variable that does not parse is a mismatch, not an error, so
// /todos/abc falls through to 404. Routes declaring Form fields reject any
// other body shape with 400 before the handler runs.
//
// Handlers return a Result describing status, body component, headers and
// htmx events. The router renders the body into a buffer before writing
// anything, so a render failure turns into a 500 for that request alone.
//
// # htmx attributes
//
// Action builds the hx-* attributes for an element:
//
//	hxtodo.NewAction("/todos/1", http.MethodDelete).
//	    TargetClosest("li").
//	    Swap(hxtodo.SwapOuter).
//	    Attrs()
package hxtodo
