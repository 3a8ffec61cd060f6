// cmd/mbc-prime/main.go
package main

import (
	"github.com/thackl/mbc-prime/internal/app"
	"github.com/thackl/mbc-prime/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
