package main

import "github.com/dotcommander/ccpulse/cmd"

func main() {
	cmd.Execute()
}
