package main

import "github.com/OpenTraceLab/OpenTraceSeq/cmd/seqview/cmd"

func main() {
	cmd.Execute()
}
