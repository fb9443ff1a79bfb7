package main

import "github.com/dotcommander/uttrack/cmd"

func main() {
	cmd.Execute()
}
