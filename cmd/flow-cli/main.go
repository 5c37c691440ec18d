package main

import "flow/cmd/flow-cli/cmd"

func main() {
	cmd.Execute()
}
