package main

import "readability/internal/cli"

func main() {
	cli.Execute()
}
