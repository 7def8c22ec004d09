package main

import "Heartbeat/pkg/commands"

func main() {
	commands.Execute()
}
