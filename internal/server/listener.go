package server

import (
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"syscall"
	"time"

	"kv-go/internal/protocol"
)

// ErrServerClosed is returned by Serve and ListenAndServe after Close.
var ErrServerClosed = errors.New("server: closed")

const (
	minAcceptBackoff = 5 * time.Millisecond
	maxAcceptBackoff = time.Second
)

// Server owns the listening socket and spawns one HandleConnection
// goroutine per accepted client. It keeps no per-connection state, and
// there is no limit on concurrent clients or their idle time.
type Server struct {
	addr string
	kv   protocol.Store

	mu       sync.Mutex
	listener net.Listener
	closed   bool
}

func New(addr string, kv protocol.Store) *Server {
	return &Server{
		addr: addr,
		kv:   kv,
	}
}

// ListenAndServe binds the configured address and serves until the
// listener fails or Close is called. A bind error is returned before any
// connection is accepted.
func (s *Server) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(listener)
}

// Serve runs the accept loop on listener. Per-connection accept failures
// are logged and retried; a closed or broken listener ends the loop.
func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		listener.Close()
		return ErrServerClosed
	}
	s.listener = listener
	s.mu.Unlock()

	log.Printf("kv server started on %s", listener.Addr())

	var backoff time.Duration
	for {
		c, err := listener.Accept()
		if err != nil {
			if s.isClosed() {
				return ErrServerClosed
			}
			if errors.Is(err, net.ErrClosed) || !isTransient(err) {
				return fmt.Errorf("accept: %w", err)
			}

			if backoff == 0 {
				backoff = minAcceptBackoff
			} else {
				backoff *= 2
			}
			if backoff > maxAcceptBackoff {
				backoff = maxAcceptBackoff
			}
			log.Printf("error accepting connection: %v; retrying in %v", err, backoff)
			time.Sleep(backoff)
			continue
		}
		backoff = 0

		go HandleConnection(c, s.kv)
	}
}

// Addr reports the bound address, or nil before Serve has started.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close stops accepting new connections. Handlers already running keep
// serving their clients until those disconnect.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// transientAcceptErrors only affect the connection being accepted; the
// listening socket stays usable.
var transientAcceptErrors = []error{
	syscall.ECONNABORTED,
	syscall.ECONNRESET,
	syscall.EMFILE,
	syscall.ENFILE,
	syscall.ENOBUFS,
	syscall.ENOMEM,
	syscall.EINTR,
}

// isTransient reports whether an accept error affects only the pending
// connection rather than the listening socket itself. Anything not listed
// in transientAcceptErrors (EBADF, EINVAL, ENOTSOCK, ...) is fatal.
func isTransient(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	for _, target := range transientAcceptErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
