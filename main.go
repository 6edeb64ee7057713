package main

import (
	"ledgerchain/cmd"
)

func main() {
	cmd.Execute()
}
