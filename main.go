package main

import "github.com/jfmyers9/genius/cmd"

func main() {
	cmd.Execute()
}
