package main

import (
	"tradebot/internal/cli"
)

func main() {
	cli.Execute()
}
