// Command wbtidy tidies the World Bank indicators export.
package main

import (
	"os"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
