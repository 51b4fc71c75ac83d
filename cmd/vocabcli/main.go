package main

import "github.com/vibe-english-platform/vocabcli/cmd"

func main() {
	cmd.Execute()
}
