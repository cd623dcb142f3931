package main

import "github.com/deckgen/deckgen/cmd"

func main() {
	cmd.Execute()
}
