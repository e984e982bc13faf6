package main

import (
	"os"

	"github.com/msto63/hasty/cmd/hasty/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
