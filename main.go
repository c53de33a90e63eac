package main

import (
	"github.com/jjtimmons/gibfrag/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
