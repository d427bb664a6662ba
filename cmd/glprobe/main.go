package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/tinyrange/glbind/internal/cli"
)

func init() {
	// GL contexts are bound to a thread.
	runtime.LockOSThread()
}

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "glprobe: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
