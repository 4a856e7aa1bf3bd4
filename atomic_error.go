package tls13

import "sync"

// atomicError holds the terminal state of a Conn. Once an error is stored
// every plane of the Conn reports it instead of touching the next conn.
type atomicError struct {
	mu  sync.Mutex
	val error
}

func (a *atomicError) store(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.val = err
}

func (a *atomicError) load() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.val
}
