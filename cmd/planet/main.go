package main

import "github.com/diogo/planet/internal/commands"

func main() {
	commands.Execute()
}
