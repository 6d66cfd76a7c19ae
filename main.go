package main

import "github.com/beka-birhanu/vinom-originshift/cmd"

// main is the entry point of the originshift CLI.
func main() {
	cmd.Execute()
}
