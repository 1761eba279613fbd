package main

import "github.com/0glabs/lunch-buddies/cmd"

func main() {
	cmd.Execute()
}
