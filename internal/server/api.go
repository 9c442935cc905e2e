package server

// API carries the server dependencies into the route handlers.
type API struct {
	server *Server
}
