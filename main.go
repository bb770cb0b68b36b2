package main

import "abc-product/cmd"

func main() {
	cmd.Execute()
}
