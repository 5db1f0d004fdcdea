package main

import (
	"github.com/sprintertech/across-dataworker/cli"
)

func main() {
	cli.Execute()
}
