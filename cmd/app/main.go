package main

import (
	"os"

	"github.com/Hetwork/swachhsathi-cf/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
