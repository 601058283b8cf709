// Command flexschema generates TypeScript, MongoEngine and Go sources from
// JSON/YAML schema documents.
package main

import (
	"os"

	"github.com/erraggy/flexschema/cmd/flexschema/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
