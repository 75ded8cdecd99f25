package main

import "github.com/OpenTraceLab/OpenTraceSchematic/cmd/ots/cmd"

func main() {
	cmd.Execute()
}
