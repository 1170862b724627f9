package main

import "github.com/philipparndt/hyperdisk/cmd"

func main() {
	cmd.Execute()
}
