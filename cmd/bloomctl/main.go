package main

import (
	"github.com/JyotinderSingh/go-bloom/cmd/bloomctl/cmds"
)

func main() {
	cmds.Execute()
}
