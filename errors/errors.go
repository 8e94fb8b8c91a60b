package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrAlreadyStarted   = fmt.Errorf("server already started")
	ErrServerStopped    = fmt.Errorf("server stopped")
	ErrAlreadyConnected = fmt.Errorf("client already connected")
)
