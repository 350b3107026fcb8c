package main

import "augment-vip/cmd"

func main() {
	cmd.Execute()
}
