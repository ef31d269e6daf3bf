package main

import (
	"glade/internal/cli"
)

func main() {
	cli.Execute()
}
