package shell

import (
	"bufio"
	"io"
	"sync"

	"github.com/danmuck/rootctl/internal/protocol/sentinel"
)

// Conn binds a live shell session's stream pair to the mutex that serializes
// conversations on it. One Conn per session; concurrent runs through the same
// Conn queue up on its lock instead of interleaving frames.
type Conn struct {
	mu sync.Mutex
	br *bufio.Reader
	w  io.Writer
}

func NewConn(r io.Reader, w io.Writer) *Conn {
	return &Conn{
		br: bufio.NewReader(r),
		w:  w,
	}
}

// exchange sends one framed attempt and consumes its reply frame.
// Callers hold the Conn lock.
func (c *Conn) exchange(attempt string) (sentinel.Reply, error) {
	if err := sentinel.WriteAttempt(c.w, attempt); err != nil {
		return sentinel.Reply{}, err
	}
	return sentinel.ReadReply(c.br)
}
