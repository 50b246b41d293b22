package main

import "github.com/lepinkainen/movieinfo/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
