package main

import "github.com/albertofem/chippuhachi/cmd"

func main() {
	cmd.Execute()
}
