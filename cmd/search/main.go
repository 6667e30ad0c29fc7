package main

import (
	"os"

	"github.com/harrison/search/internal/cmd"
)

// Version is the current version of the search application
const Version = "1.0.0"

func main() {
	cmd.Version = Version
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
