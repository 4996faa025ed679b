// cmd/wfsim/main.go
package main

import (
	"wfsim/internal/app"
	"wfsim/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
