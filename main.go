package main

import (
	"github.com/janelia-scicomp/biblio/cmd"
)

func main() {
	cmd.Execute()
}
