package server

// routes registers the route table. Order matters: the first matching entry
// handles a request.
func (s *Server) routes() {
	rt := s.router

	rt.GET("/", s.index)
	rt.GET("/todos", s.listTodos)
	rt.POST("/todos", s.createTodo).Form("id", "text")
	rt.PUT("/todos/{id:uint}", s.updateTodo).Form("id", "text")
	rt.DELETE("/todos/{id:uint}", s.deleteTodo)
	rt.GET("/counter/-", s.decrement)
	rt.GET("/counter/+", s.increment)
	rt.GET("/hello/{name}", s.hello)
}
