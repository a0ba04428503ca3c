// Package session owns establishment of the shell process behind a Conn.
//
// Ownership boundary:
// - spawning the first available shell candidate
// - binding its stdin/stdout pipes into a shell.Conn
// - teardown on Close
//
// Elevated candidates (su) naturally come first in the candidate list; there
// is no privilege logic here beyond trying them in order.
package session

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/rootctl/internal/shell"
)

var ErrNoShell = errors.New("session: no shell candidate could be started")

// Process is one live shell process bound to a shell.Conn.
type Process struct {
	name  string
	cmd   *exec.Cmd
	stdin io.WriteCloser
	conn  *shell.Conn
}

// Start launches the first candidate binary that starts. The process's own
// stderr is discarded; attempts already redirect command stderr themselves.
func Start(candidates ...string) (*Process, error) {
	var lastErr error
	for _, name := range candidates {
		p, err := start(name)
		if err == nil {
			log.Debug().Str("shell", name).Msg("shell session started")
			return p, nil
		}
		lastErr = err
		log.Debug().Str("shell", name).Err(err).Msg("shell candidate unavailable")
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoShell, lastErr)
	}
	return nil, ErrNoShell
}

func start(name string) (*Process, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Process{
		name:  name,
		cmd:   cmd,
		stdin: stdin,
		conn:  shell.NewConn(stdout, stdin),
	}, nil
}

// Name returns the candidate that actually started.
func (p *Process) Name() string {
	return p.name
}

// Conn returns the stream pair for this session. All Shell values for this
// session must be built on it.
func (p *Process) Conn() *shell.Conn {
	return p.conn
}

// Close ends the session: closing stdin lets the shell exit on EOF, then the
// process is reaped.
func (p *Process) Close() error {
	if err := p.stdin.Close(); err != nil {
		return err
	}
	return p.cmd.Wait()
}
