package main

import "github.com/spaghettifunk/litecraft/cmd"

func main() {
	cmd.Execute()
}
