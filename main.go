package main

import "github.com/ehvi8r/G7-Auditor/cmd"

func main() {
	cmd.Execute()
}
