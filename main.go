package main

import (
	"github.com/T-PsyOl/iMove-Workshop/cmd"
)

func main() {
	cmd.Execute()
}
