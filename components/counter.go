package components

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pthm/hxtodo"
)

// CounterProps holds the value to display.
type CounterProps struct {
	Value int64
}

// Counter renders the counter with buttons that replace it in place.
var Counter = hxtodo.New("counter", func(p CounterProps) templ.Component {
	button := func(path, label string) templ.Component {
		attrs := hxtodo.NewAction(path, http.MethodGet).
			Target("#" + CounterID).
			Swap(hxtodo.SwapOuter).
			Attrs()
		return hxtodo.Element("button", attrs, hxtodo.Text(label))
	}

	return hxtodo.Element("div", templ.Attributes{"id": CounterID},
		button("/counter/-", "-"),
		hxtodo.Element("span", nil, hxtodo.Text(strconv.FormatInt(p.Value, 10))),
		button("/counter/+", "+"),
	)
})
