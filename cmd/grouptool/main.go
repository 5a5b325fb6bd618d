// Command grouptool completes finitely presented groups from YAML
// presentations and answers canonical-form queries against them.
package main

import (
	"fmt"
	"os"

	"github.com/VosDeMens/Group-Theory-Sandbox/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "grouptool:", err)
		os.Exit(1)
	}
}
