package shell

import (
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/rootctl/internal/protocol/sentinel"
)

// attemptOutcome is the explicit per-attempt judgment. Stream failures are a
// visible branch, counted like a rejected exit code rather than surfaced.
type attemptOutcome int

const (
	outcomeMatched attemptOutcome = iota
	outcomeRejected
	outcomeStreamError
)

// runState aggregates one run across the queue.
type runState struct {
	output  []string
	code    int
	winners []int
}

// Run drains the staged queue over the session stream and returns a Result.
// Commands execute strictly in order; a logical command whose every attempt
// fails aborts the remainder of the queue. Run never returns an error: total
// failure is a Result with exit code sentinel.StatusUnknown. The staged queue
// and accepted codes are consumed and reset on every exit path.
//
// The Conn lock is held for the whole queue, since the session is one ordered
// conversation and an interleaved writer would corrupt the framing.
func (s *Shell) Run() *Result {
	s.conn.mu.Lock()
	defer s.conn.mu.Unlock()

	queue := s.queue
	codes := slices.Clone(s.codes)
	s.Reset()

	runID := uuid.NewString()
	runLog := log.With().Str("run_id", runID).Logger()
	runLog.Info().Int("commands", len(queue)).Msg("executing shell queue")

	st := runState{code: sentinel.StatusUnknown}

queueLoop:
	for i, attempts := range queue {
		runLog.Debug().Int("command", i).Int("attempts", len(attempts)).Msg("executing logical command")

		for x, attempt := range attempts {
			reply, err := s.conn.exchange(attempt)
			switch judge(reply, err, codes) {
			case outcomeMatched:
				st.code = reply.Status
				if len(queue) == 1 {
					st.output = reply.Output
				} else {
					st.output = append(st.output, reply.Output...)
				}
				st.winners = append(st.winners, x)
				runLog.Debug().Int("command", i).Int("attempt", x).Int("status", reply.Status).Msg("attempt matched")
				continue queueLoop
			case outcomeRejected:
				st.code = reply.Status
				runLog.Debug().Int("command", i).Int("attempt", x).Int("status", reply.Status).Msg("attempt rejected")
			case outcomeStreamError:
				// Exit code keeps its previous value; the shell never answered.
				runLog.Debug().Int("command", i).Int("attempt", x).Err(err).Msg("attempt failed on stream")
			}
		}

		runLog.Warn().Int("command", i).Msg("attempts exhausted, aborting queue")
		break
	}

	st.output = trimEdges(st.output)
	runLog.Info().Int("status", st.code).Int("completed", len(st.winners)).Msg("shell queue finished")

	return newResult(runID, st, codes)
}

// RunCommand stages one verbatim command on top of anything already staged
// and runs the queue.
func (s *Shell) RunCommand(command string) *Result {
	return s.AddCommands(command).Run()
}

func judge(reply sentinel.Reply, err error, accepted []int) attemptOutcome {
	if err != nil {
		return outcomeStreamError
	}
	if slices.Contains(accepted, reply.Status) {
		return outcomeMatched
	}
	return outcomeRejected
}

// trimEdges strips at most one leading and one trailing empty line, the
// artifact of the forced separator echo in the attempt frame.
func trimEdges(lines []string) []string {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return lines
}
