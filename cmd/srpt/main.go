// Package main is the entry point for the srpt CLI tool.
package main

import (
	"github.com/surveytools/srpt/internal/cmd"
)

func main() {
	cmd.Execute()
}
