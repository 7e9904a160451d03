package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"sssh/pkg/crash"
	"sssh/pkg/runner"
)

const appName = "sssh"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	defer crash.Handle(os.Stderr, crashInfo())
	os.Exit(run(context.Background(), newCLI(os.Stdout, os.Stderr), os.Args[1:]))
}

func crashInfo() crash.Info {
	return crash.Info{Name: appName, Version: version}
}

func run(ctx context.Context, c *cli, args []string) int {
	err := execute(ctx, c, args)
	if err == nil {
		return 0
	}
	// A panic recovered inside the terminal UI gets the same report as one reaching main.
	var cerr *crash.Error
	if errors.As(err, &cerr) {
		crash.Report(c.errOut, crashInfo(), cerr.Value, cerr.Stack, os.Args)
		return crash.ExitCode
	}
	fmt.Fprintf(c.errOut, "%s: %v\n", appName, err)
	return exitCodeFromErr(err)
}

// exitCodeFromErr propagates the connect script's exit status; everything else is 1.
func exitCodeFromErr(err error) int {
	var perr *runner.ProcessError
	if errors.As(err, &perr) && perr.Stage == runner.StageFailed && perr.ExitCode > 0 {
		return perr.ExitCode
	}
	return 1
}
