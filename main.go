package main

import (
	"data-profiler/cmd"

	_ "github.com/sijms/go-ora/v2"
)

func main() {
	cmd.Execute()
}
