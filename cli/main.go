package main

import "github.com/ponyo877/dush/cli/cmd"

func main() {
	cmd.Execute()
}
