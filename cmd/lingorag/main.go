package main

import "lingorag/internal/cli"

func main() {
	cli.Execute()
}
