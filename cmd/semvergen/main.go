package main

import (
	"github.com/canardleteer/proptest-semver/pkg/cli"
)

func main() {
	cli.Execute()
}
