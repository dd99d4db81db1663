package main

import "github.com/user/scaudit-mcp/cmd"

func main() {
	cmd.Execute()
}
