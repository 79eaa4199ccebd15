// Command spdemo is an interactive shortest-path demonstrator for the
// terminal.
package main

import "github.com/katalvlaran/spdemo/internal/cli"

func main() {
	cli.Execute()
}
