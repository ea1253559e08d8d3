package server

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pthm/hxtodo"
	"github.com/pthm/hxtodo/components"
	"github.com/pthm/hxtodo/lib/store"
)

// EventTodosChanged is sent in HX-Trigger after every successful mutation.
// Its detail carries the id of the record as it stands afterwards.
const EventTodosChanged = "todos:changed"

func changed(id uint64) map[string]any {
	return map[string]any{"id": id}
}

type pageSnapshot struct {
	Todos   []store.Record `msgpack:"todos"`
	Counter int64          `msgpack:"counter"`
}

func (s *Server) index(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
	snap := pageSnapshot{Todos: s.store.List(), Counter: s.counter.Value()}
	res := hxtodo.OK(components.Page.With(components.PageProps{
		Todos:   snap.Todos,
		Counter: snap.Counter,
	}))
	return s.withETag(ctx, res, snap)
}

func (s *Server) listTodos(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
	todos := s.store.List()
	res := hxtodo.OK(components.TodoList.With(components.TodoListProps{Todos: todos}))
	return s.withETag(ctx, res, todos)
}

func (s *Server) createTodo(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
	r, ok := decodeRecord(req.Form)
	if !ok {
		return hxtodo.Empty(http.StatusBadRequest)
	}

	if err := s.store.Create(r); err != nil {
		if store.IsConflict(err) {
			s.logger.DebugContext(ctx, "create rejected", "id", r.ID, "error", err)
			return hxtodo.Empty(http.StatusBadRequest)
		}
		return hxtodo.Empty(http.StatusInternalServerError)
	}

	return hxtodo.Created(components.TodoItem.With(components.TodoItemProps{Todo: r})).
		Trigger(EventTodosChanged, changed(r.ID))
}

func (s *Server) updateTodo(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
	id := req.Params.Uint("id")
	r, ok := decodeRecord(req.Form)
	if !ok {
		return hxtodo.Empty(http.StatusBadRequest)
	}

	if err := s.store.Update(id, r); err != nil {
		switch {
		case store.IsNotFound(err):
			return hxtodo.Empty(http.StatusNotFound)
		case store.IsConflict(err):
			s.logger.DebugContext(ctx, "update rejected", "id", id, "new_id", r.ID, "error", err)
			return hxtodo.Empty(http.StatusBadRequest)
		default:
			return hxtodo.Empty(http.StatusInternalServerError)
		}
	}

	return hxtodo.NoContent().Trigger(EventTodosChanged, changed(r.ID))
}

func (s *Server) deleteTodo(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
	id := req.Params.Uint("id")
	if err := s.store.Delete(id); err != nil {
		if store.IsNotFound(err) {
			return hxtodo.Empty(http.StatusNotFound)
		}
		return hxtodo.Empty(http.StatusInternalServerError)
	}
	return hxtodo.Empty(http.StatusOK).Trigger(EventTodosChanged, changed(id))
}

func (s *Server) decrement(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
	return hxtodo.OK(components.Counter.With(components.CounterProps{Value: s.counter.Decrement()}))
}

func (s *Server) increment(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
	return hxtodo.OK(components.Counter.With(components.CounterProps{Value: s.counter.Increment()}))
}

func (s *Server) hello(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
	return hxtodo.PlainText(http.StatusOK, "Hello, "+req.Params.String("name")+"!")
}

// withETag tags res with a fingerprint of the data it renders from. A
// fingerprint failure only costs the tag.
func (s *Server) withETag(ctx context.Context, res hxtodo.Result, v any) hxtodo.Result {
	tag, err := hxtodo.ETag(s.enc, v)
	if err != nil {
		s.logger.WarnContext(ctx, "etag failed", "error", err)
		return res
	}
	return res.ETag(tag)
}

// decodeRecord reads the id and text fields. The router has already checked
// that each is present exactly once.
func decodeRecord(form url.Values) (store.Record, bool) {
	id, err := strconv.ParseUint(form.Get("id"), 10, 64)
	if err != nil {
		return store.Record{}, false
	}
	return store.Record{ID: id, Text: form.Get("text")}, true
}
