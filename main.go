package main

import "github.com/tristendillon/dtsgen/cmd"

func main() {
	cmd.Execute()
}
