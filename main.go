package main

import "github.com/eng618/nonogram-builder/cmd"

func main() {
	cmd.Execute()
}
