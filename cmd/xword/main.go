package main

import "github.com/mcoot/crosswordgen/internal/cli"

func main() {
	cli.Execute()
}
