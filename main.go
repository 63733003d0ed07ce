package main

import "github.com/mouse-blink/schemafix/cmd"

func main() {
	cmd.Execute()
}
