// ghana-law ingests Ghanaian legislation into a local full-text corpus
// and serves it over the Model Context Protocol.
package main

import (
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
