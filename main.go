package main

import "github.com/tonescribe/tonescribe/cmd"

func main() {
	cmd.Execute()
}
