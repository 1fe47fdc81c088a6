package main

import "localserve/cmd"

func main() {
	cmd.Execute()
}
