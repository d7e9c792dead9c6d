package main

import "fixture-server/cmd"

func main() {
	cmd.Execute()
}
