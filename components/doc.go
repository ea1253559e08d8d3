// Package components holds the UI of the todo app: the page layout, the todo
// list and its items, and the counter widget.
//
// Every component is a pure function of its props. Handlers in the server
// package read the store and pass snapshots in; nothing here touches shared
// state.
package components

// Element ids shared between markup and the hx-target selectors that address
// it. Changing one without the other breaks partial updates.
const (
	TodosID   = "todos"
	CounterID = "counter"
	SpinnerID = "spinner"
)
