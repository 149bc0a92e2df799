package main

import "iolens/internal/cmd"

func main() {
	cmd.Execute()
}
