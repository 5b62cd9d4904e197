package main

import "github.com/pterobot/pterobot/cmd/pterobot/cmd"

func main() {
	cmd.Execute()
}
