package main

import (
	"fmt"
	"os"

	"payoutd/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("payoutd run into an error: %s\n", err)
		os.Exit(1)
	}
}
