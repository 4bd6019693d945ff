package main

import "github.com/goastler/sha-256/cmd/sha256sum/cmd"

func main() {
	cmd.Execute()
}
