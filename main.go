package main

import "github.com/sjrankin/RotationTest/internal/cmd"

func main() {
	cmd.Parse()
}
