//go:build !(js && wasm)

package main

import (
	"os"

	"github.com/marisvali/mason/play"
)

func getUsername() string {
	if u := os.Getenv("MASON_USER"); u != "" {
		return u
	}
	return "mason-dev"
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	play.Check(err)
}
