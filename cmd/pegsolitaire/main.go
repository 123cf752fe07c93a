// Command pegsolitaire plays, solves and serves peg solitaire boards.
package main

import "github.com/pegsolitaire/pegsolitaire/internal/cli"

func main() {
	cli.Execute()
}
