package main

import "xacro-convert/internal/cli"

func main() {
	cli.Execute()
}
