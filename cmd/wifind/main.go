package main

import (
	"github.com/wifind/wifind/cmd/wifind/cmd"
)

func main() {
	cmd.Execute()
}
