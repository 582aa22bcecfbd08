package main

import "github.com/mouse-blink/prodscan/cmd"

func main() {
	cmd.Execute()
}
