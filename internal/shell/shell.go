package shell

import (
	"regexp"
	"slices"
)

// binaryPattern matches the substitution token plus any trailing spaces, so
// the bare variant does not keep a dangling gap where the token stood.
var binaryPattern = regexp.MustCompile("%binary[ ]*")

const stderrDiscard = " 2>/dev/null"

// Options configures a Shell. Binaries is the elevated-binary priority list
// the builder substitutes for the %binary token; an empty list means built
// commands get only the bare variant.
type Options struct {
	Binaries []string
}

// Shell stages a queue of logical commands against one session Conn. Each
// logical command is an ordered list of attempts tried until one's exit code
// lands in the accepted set. The staged queue and accepted codes live only
// until the next Run, which consumes and resets them.
type Shell struct {
	conn     *Conn
	binaries []string
	codes    []int
	queue    [][]string
}

func New(conn *Conn, opts Options) *Shell {
	return &Shell{
		conn:     conn,
		binaries: slices.Clone(opts.Binaries),
		codes:    []int{0},
	}
}

// BuildCommands expands each template into its own logical command: one
// attempt per configured binary (in priority order) plus a bare variant with
// the token removed, every attempt suffixed with stderr discard.
//
// BuildCommands("%binary df -h") with binaries busybox, toolbox stages
// "busybox df -h", "toolbox df -h", "df -h", each ending in " 2>/dev/null".
func (s *Shell) BuildCommands(templates ...string) *Shell {
	for _, tpl := range templates {
		s.queue = append(s.queue, s.expand(tpl))
	}
	return s
}

// BuildAttempts expands like BuildCommands but flattens every expanded
// attempt across all templates into ONE logical command.
func (s *Shell) BuildAttempts(templates ...string) *Shell {
	if len(templates) == 0 {
		return s
	}
	attempts := make([]string, 0, len(templates)*(len(s.binaries)+1))
	for _, tpl := range templates {
		attempts = append(attempts, s.expand(tpl)...)
	}
	s.queue = append(s.queue, attempts)
	return s
}

// AddCommands stages each literal as its own single-attempt logical command,
// verbatim: no token expansion, no stderr suffix.
func (s *Shell) AddCommands(commands ...string) *Shell {
	for _, cmd := range commands {
		s.queue = append(s.queue, []string{cmd})
	}
	return s
}

// AddAttempts stages all literals as one logical command, verbatim.
func (s *Shell) AddAttempts(attempts ...string) *Shell {
	if len(attempts) == 0 {
		return s
	}
	s.queue = append(s.queue, slices.Clone(attempts))
	return s
}

// SetResultCodes replaces the accepted exit codes wholesale. The set reverts
// to {0} after every Run.
func (s *Shell) SetResultCodes(codes ...int) *Shell {
	s.codes = slices.Clone(codes)
	return s
}

// Reset drops the staged queue and restores the accepted codes to {0}.
func (s *Shell) Reset() *Shell {
	s.queue = nil
	s.codes = []int{0}
	return s
}

func (s *Shell) expand(template string) []string {
	attempts := make([]string, 0, len(s.binaries)+1)
	for _, bin := range s.binaries {
		attempts = append(attempts, binaryPattern.ReplaceAllString(template, bin+" ")+stderrDiscard)
	}
	return append(attempts, binaryPattern.ReplaceAllString(template, "")+stderrDiscard)
}
