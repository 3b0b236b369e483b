package main

import (
	"os"

	"github.com/questflowai/aster-mcp-server/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
