package server

import "time"

// The ops API serves tiny GET requests plus a one-shot PNG encode; the
// WebSocket feed hijacks its connection before write deadlines apply.
const (
	readTimeout  = 5 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 120 * time.Second
)

// shutdownTimeout bounds draining the frame loop, the simulator clients
// and both listeners. A var so tests can shrink it.
var shutdownTimeout = 10 * time.Second
