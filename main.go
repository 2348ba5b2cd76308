package main

import "github.com/dasunNimantha/reel/internal/cmd"

func main() {
	cmd.Execute()
}
