package main

import "prehrajto/cmd"

func main() {
	cmd.Execute()
}
