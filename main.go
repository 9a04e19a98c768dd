package main

import "lottogen/cmd"

func main() {
	cmd.Execute()
}
