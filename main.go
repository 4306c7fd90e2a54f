package main

import (
	"bundle-importer/cmd"
)

func main() {
	cmd.Execute()
}
