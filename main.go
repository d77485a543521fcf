package main

import "github.com/jywlabs/specgen/cmd"

func main() {
	cmd.Execute()
}
