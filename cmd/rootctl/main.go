package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/rootctl/internal/logging"
	"github.com/danmuck/rootctl/internal/protocol/sentinel"
	"github.com/danmuck/rootctl/internal/session"
	"github.com/danmuck/rootctl/internal/shell"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("rootctl", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML shell profile")
	attempts := fs.Bool("attempts", false, "treat every template as an attempt of one logical command")
	raw := fs.Bool("raw", false, "run templates verbatim, no binary expansion")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logging.ConfigureRuntime()

	templates := fs.Args()
	if len(templates) == 0 {
		fmt.Fprintln(os.Stderr, "rootctl: no commands given")
		return 2
	}

	cfg, err := loadProfile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rootctl: %v\n", err)
		return 2
	}

	proc, err := session.Start(cfg.Shells...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rootctl: %v\n", err)
		return 2
	}
	defer proc.Close()

	sh := shell.New(proc.Conn(), shell.Options{Binaries: cfg.Binaries})
	sh.SetResultCodes(cfg.ResultCodes...)
	switch {
	case *raw:
		sh.AddCommands(templates...)
	case *attempts:
		sh.BuildAttempts(templates...)
	default:
		sh.BuildCommands(templates...)
	}

	res := sh.Run()
	if res.Len() > 0 {
		fmt.Println(res.String())
	}
	if !res.Successful() {
		log.Warn().Str("run_id", res.RunID()).Int("status", res.ExitCode()).Msg("shell queue failed")
	}
	if res.ExitCode() == sentinel.StatusUnknown {
		return 255
	}
	return res.ExitCode()
}
