package main

import "github.com/aalvaropc/probtable/internal/cli"

func main() {
	cli.Execute()
}
