package main

import (
	"github.com/NVIDIA/foundry-forcecpu/pkg/cli"
)

func main() {
	cli.ExecuteDiag()
}
