package main

import "clubform/internal/cli"

func main() {
	cli.Execute()
}
