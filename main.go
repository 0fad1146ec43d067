// Package main provides the entrypoint for gateway-interceptor.
package main

import (
	"os"

	"github.com/isometry/gateway-interceptor/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
