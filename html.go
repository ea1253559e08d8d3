package hxtodo

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Element renders <tag attrs>children</tag>. Nil children are skipped.
func Element(tag string, attrs templ.Attributes, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeOpenTag(ctx, w, tag, attrs); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Void renders a void element such as <input> or <img>, which has no
// children and no closing tag.
func Void(tag string, attrs templ.Attributes) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeOpenTag(ctx, w, tag, attrs)
	})
}

// Text renders s with HTML escaping.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Raw renders s verbatim. Only use for trusted markup.
func Raw(s string) templ.Component {
	return templ.Raw(s)
}

// Doctype renders the HTML5 doctype.
func Doctype() templ.Component {
	return templ.Raw("<!DOCTYPE html>")
}

// Fragment renders children in order with no wrapping element.
func Fragment(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}

// Repeat renders each(item) for every item, in order. An empty slice renders
// nothing.
func Repeat[T any](items []T, each func(item T) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, item := range items {
			if err := each(item).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// writeOpenTag writes "<tag" plus attributes in sorted key order, so equal
// attribute maps always produce equal bytes. Attribute values of types templ
// does not render (nil, structs) are dropped.
func writeOpenTag(ctx context.Context, w io.Writer, tag string, attrs templ.Attributes) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
		return err
	}
	_, err := io.WriteString(w, ">")
	return err
}
