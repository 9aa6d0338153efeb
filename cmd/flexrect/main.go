// Command flexrect resolves YAML layout trees into positioned rectangles.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/flexrect/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
