package main

import "userctl/cmd"

func main() {
	cmd.Execute()
}
