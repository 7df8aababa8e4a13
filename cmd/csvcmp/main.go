package main

import (
	"os"

	"github.com/dshills/csvcmp/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
