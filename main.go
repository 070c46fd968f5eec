package main

import "book-manager/cmd"

func main() {
	cmd.Execute()
}
