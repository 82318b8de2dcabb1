// Command licensegen recommends an open-source license and writes the
// filled-in license text.
package main

import (
	"os"

	"github.com/licensegen/licensegen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
