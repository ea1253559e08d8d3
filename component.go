package hxtodo

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
)

// Renderer is implemented by anything that turns props into templ output.
//
// Render must be pure: it reads props and produces HTML without side effects.
// Shared state (stores, counters) is read by the handler and passed in as
// props, never fetched from inside Render.
type Renderer[P any] interface {
	Render(ctx context.Context, props P) templ.Component
}

// Component[P] is a named, typed rendering unit. P is the Props type.
//
// Components are composed by passing one component's output as a prop of
// another:
//
//	var Page = hxtodo.New("page", func(p PageProps) templ.Component {
//	    return Layout.With(LayoutProps{
//	        Title:    "ToDos App",
//	        Children: TodoList.With(TodoListProps{Todos: p.Todos}),
//	    })
//	})
type Component[P any] struct {
	name   string
	render func(props P) templ.Component
}

// New creates a component with the given name and render function.
func New[P any](name string, render func(props P) templ.Component) *Component[P] {
	if render == nil {
		panic(fmt.Sprintf("hxtodo: component %q has no render function", name))
	}
	return &Component[P]{name: name, render: render}
}

// Name returns the component's name.
func (c *Component[P]) Name() string {
	return c.name
}

// Render implements Renderer.
func (c *Component[P]) Render(ctx context.Context, props P) templ.Component {
	return c.render(props)
}

// With binds props, producing a child suitable for embedding in a parent.
func (c *Component[P]) With(props P) templ.Component {
	return c.render(props)
}

// RenderString renders c into a string. Write failures are wrapped in
// ErrRender.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.String(), nil
}
