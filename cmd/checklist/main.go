package main

import "github.com/youruser/surgechecklist/internal/cli"

func main() {
	cli.Execute()
}
