package main

import "focus-writer/cmd"

func main() {
	cmd.Execute()
}
