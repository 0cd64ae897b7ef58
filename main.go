package main

import "github.com/Taichi-iskw/videominer/cmd"

func main() {
	cmd.Execute()
}
