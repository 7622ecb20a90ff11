package main

import (
	"github.com/debug-here/debughere/cmd/debug-here-wrapper/cmds"
)

func main() {
	cmds.New().Execute()
}
