package main

import "github.com/Manu343726/dis8086/cmd"

func main() {
	cmd.Execute()
}
