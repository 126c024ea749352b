package main

import "github.com/mcoot/tetris-go/internal/cli"

func main() {
	cli.Execute()
}
