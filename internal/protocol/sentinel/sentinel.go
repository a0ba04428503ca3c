package sentinel

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Token delimits command output from status metadata. Frozen wire constant.
const Token = "EOL:a00c38d8:EOL"

// StatusUnknown is the status value when no integer was parsed from the frame.
const StatusUnknown = -1

var ErrStreamClosed = errors.New("sentinel: stream closed inside attempt frame")

// Reply is one decoded attempt frame.
type Reply struct {
	Output []string
	Status int
}

// WriteAttempt frames one attempt onto the stream in a single write.
//
// The status-capture line echoes an empty string so that output from commands
// without a trailing newline cannot merge into the sentinel line; some shells
// trim a bare double line break, the echo survives all of them.
func WriteAttempt(w io.Writer, attempt string) error {
	var buf bytes.Buffer
	buf.WriteString(attempt)
	buf.WriteString("\n")
	buf.WriteString("status=$? && echo ''\n")
	buf.WriteString("echo " + Token + "\n")
	buf.WriteString("echo $status\n")
	buf.WriteString("echo " + Token + "\n")
	_, err := w.Write(buf.Bytes())
	return err
}

// ReadReply consumes exactly one attempt frame: every line before the first
// sentinel is command output, and the last integer line before the second
// sentinel is the exit status. The second sentinel is always consumed, even
// when no status line parsed, so no frame bytes leak into the next attempt.
func ReadReply(br *bufio.Reader) (Reply, error) {
	reply := Reply{Status: StatusUnknown}

	for {
		line, err := readLine(br)
		if err != nil {
			return Reply{}, closedErr(err)
		}
		if strings.Contains(line, Token) {
			break
		}
		reply.Output = append(reply.Output, line)
	}

	for {
		line, err := readLine(br)
		if err != nil {
			return Reply{}, closedErr(err)
		}
		if strings.Contains(line, Token) {
			return reply, nil
		}
		if line == "" {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			reply.Status = v
		}
	}
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func closedErr(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrStreamClosed
	}
	return err
}
