package main

import (
	"os"

	"github.com/qoonic/forge/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
