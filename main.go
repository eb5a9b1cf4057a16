package main

import "github.com/gandallf070/trebol/cmd/trebol/commands"

func main() {
	commands.Execute()
}
