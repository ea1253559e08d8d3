package hxtodo

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	html, err := RenderString(context.Background(), c)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	return html
}

func TestElement(t *testing.T) {
	tests := []struct {
		name string
		c    templ.Component
		want string
	}{
		{"empty", Element("ul", nil), "<ul></ul>"},
		{"text child", Element("p", nil, Text("hi")), "<p>hi</p>"},
		{"nil child skipped", Element("p", nil, nil, Text("x")), "<p>x</p>"},
		{
			name: "attributes sorted",
			c:    Element("a", templ.Attributes{"id": "z", "class": "c", "hx-get": "/x"}),
			want: `<a class="c" hx-get="/x" id="z"></a>`,
		},
		{
			name: "bool attributes",
			c:    Element("input", templ.Attributes{"disabled": true, "hidden": false}),
			want: `<input disabled></input>`,
		},
		{
			name: "numeric attribute",
			c:    Element("li", templ.Attributes{"id": uint64(7)}),
			want: `<li id="7"></li>`,
		},
		{
			name: "attribute escaped",
			c:    Element("input", templ.Attributes{"value": `"><script>`}),
			want: `<input value="&#34;&gt;&lt;script&gt;"></input>`,
		},
		{
			name: "attribute pointer values",
			c:    Element("input", templ.Attributes{"value": ptr("v"), "checked": ptr(true), "name": (*string)(nil)}),
			want: `<input checked value="v"></input>`,
		},
		{
			name: "unrenderable attribute dropped",
			c:    Element("p", templ.Attributes{"data-x": struct{}{}, "id": "a"}),
			want: `<p id="a"></p>`,
		},
		{
			name: "text escaped",
			c:    Element("p", nil, Text(`a < b & "c"`)),
			want: `<p>a &lt; b &amp; &#34;c&#34;</p>`,
		},
		{
			name: "nested in declared order",
			c:    Element("div", nil, Element("h1", nil, Text("a")), Element("p", nil, Text("b"))),
			want: "<div><h1>a</h1><p>b</p></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.c); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVoid(t *testing.T) {
	got := render(t, Void("img", templ.Attributes{"src": "/a.gif", "width": 40}))
	want := `<img src="/a.gif" width="40">`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextEscapes(t *testing.T) {
	got := render(t, Text(`<b>"milk" & 'eggs'</b>`))
	want := "&lt;b&gt;&#34;milk&#34; &amp; &#39;eggs&#39;&lt;/b&gt;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRawAndDoctype(t *testing.T) {
	if got := render(t, Fragment(Doctype(), Raw("<b>x</b>"))); got != "<!DOCTYPE html><b>x</b>" {
		t.Errorf("got %q", got)
	}
}

func TestRepeat(t *testing.T) {
	item := func(s string) templ.Component { return Element("li", nil, Text(s)) }

	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"nil", nil, ""},
		{"empty", []string{}, ""},
		{"ordered", []string{"b", "a", "c"}, "<li>b</li><li>a</li><li>c</li>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, Repeat(tt.items, item)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestElementPropagatesWriteError(t *testing.T) {
	c := Element("ul", nil, Text("x"))
	if err := c.Render(context.Background(), failingWriter{}); err == nil {
		t.Fatal("expected write error")
	}
}

func TestRenderStringWrapsError(t *testing.T) {
	boom := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return errors.New("boom")
	})
	_, err := RenderString(context.Background(), Element("div", nil, boom))
	if !IsRenderError(err) {
		t.Errorf("err = %v, want ErrRender", err)
	}
}

func ptr[T any](v T) *T { return &v }
