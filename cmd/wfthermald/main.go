// Package main implements the wfthermald command, a self-tuning CPU
// thermal governor for Linux laptops.
package main

import (
	"github.com/wrale/wfthermald/internal/cli"
)

func main() {
	cli.Execute()
}
