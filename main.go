package main

import "github.com/fsinspect/fsinspect/cmd"

func main() {
	cmd.Execute()
}
