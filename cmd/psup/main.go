package main

import "psup/internal/cli"

func main() {
	cli.Execute()
}
