package main

import "github.com/brogergvhs/starsite/cmd"

func main() {
	cmd.Execute()
}
