package main

import (
	"os"

	"github.com/neomantra/doinv/cli"
)

func main() {
	cli.Run(os.Args)
}
