// cmd/wfsim-genotype/main.go
package main

import (
	"wfsim/internal/appshell"
	"wfsim/internal/genotypeapp"
)

func main() {
	appshell.Main(genotypeapp.RunContext)
}
