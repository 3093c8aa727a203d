package main

import "github.com/katalvlaran/advent/cmd/advent/cmd"

func main() {
	cmd.Execute()
}
