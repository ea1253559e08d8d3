package components

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/pthm/hxtodo"
	"github.com/pthm/hxtodo/lib/store"
	"github.com/sebdah/goldie/v2"
)

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGolden(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		c    func() (string, error)
	}{
		{"todo_item", func() (string, error) {
			return hxtodo.RenderString(ctx, TodoItem.With(TodoItemProps{Todo: store.Record{ID: 1, Text: "buy milk"}}))
		}},
		{"todo_item_escaped", func() (string, error) {
			return hxtodo.RenderString(ctx, TodoItem.With(TodoItemProps{Todo: store.Record{ID: 7, Text: `<b>"fish" & chips</b>`}}))
		}},
		{"todo_list", func() (string, error) {
			return hxtodo.RenderString(ctx, TodoList.With(TodoListProps{Todos: []store.Record{
				{ID: 0, Text: "buy milk"},
				{ID: 1, Text: "walk dog"},
			}}))
		}},
		{"todo_list_empty", func() (string, error) {
			return hxtodo.RenderString(ctx, TodoList.With(TodoListProps{}))
		}},
		{"counter", func() (string, error) {
			return hxtodo.RenderString(ctx, Counter.With(CounterProps{Value: -3}))
		}},
		{"page", func() (string, error) {
			return hxtodo.RenderString(ctx, Page.With(PageProps{
				Todos: []store.Record{{ID: 0, Text: "buy milk"}},
			}))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.c()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			golden(t).Assert(t, tt.name, []byte(out))
		})
	}
}

func TestTodoItemIDOnOutermostElement(t *testing.T) {
	res, err := hxtodo.TestRender(TodoItem, TodoItemProps{Todo: store.Record{ID: 42, Text: "x"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.HTML, `<li id="42">`) {
		t.Errorf("expected <li id=\"42\"> prefix, got %q", res.HTML)
	}
	if !res.HTMLContainsAll(`hx-put="/todos/42"`, `hx-delete="/todos/42"`, `value="x"`) {
		t.Errorf("missing wiring in %q", res.HTML)
	}
}

func TestTodoListPreservesOrder(t *testing.T) {
	todos := []store.Record{{ID: 9, Text: "c"}, {ID: 2, Text: "a"}, {ID: 5, Text: "b"}}
	res, err := hxtodo.TestRender(TodoList, TodoListProps{Todos: todos})
	if err != nil {
		t.Fatal(err)
	}

	if got := res.HTMLCount("<li "); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
	i9 := strings.Index(res.HTML, `id="9"`)
	i2 := strings.Index(res.HTML, `id="2"`)
	i5 := strings.Index(res.HTML, `id="5"`)
	if !(i9 < i2 && i2 < i5) {
		t.Errorf("items out of order: %q", res.HTML)
	}
}

func TestCounterExtremes(t *testing.T) {
	for _, v := range []int64{0, -1, 9223372036854775807, -9223372036854775808} {
		res, err := hxtodo.TestRender(Counter, CounterProps{Value: v})
		if err != nil {
			t.Fatal(err)
		}
		want := "<span>" + strconv.FormatInt(v, 10) + "</span>"
		if !res.HTMLContains(want) {
			t.Errorf("counter %d: expected %q in %q", v, want, res.HTML)
		}
	}
}

func TestPageWiring(t *testing.T) {
	res, err := hxtodo.TestRender(Page, PageProps{Counter: 5})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(res.HTML, "<!DOCTYPE html>") {
		t.Errorf("page should start with doctype")
	}
	if !res.HTMLContainsAll(
		"<title>ToDos App</title>",
		"<h1>ToDos App</h1>",
		`hx-post="/todos"`,
		`hx-target="#todos &gt; ul"`,
		`hx-swap="beforeend"`,
		`<div id="todos"><ul></ul></div>`,
		`<span>5</span>`,
		`id="spinner"`,
	) {
		t.Errorf("page missing expected markup: %q", res.HTML)
	}
}

func TestTodoPath(t *testing.T) {
	if got := TodoPath(18446744073709551615); got != "/todos/18446744073709551615" {
		t.Errorf("TodoPath = %q", got)
	}
}
