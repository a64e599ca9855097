package main

import (
	"github.com/couplewheel/couplewheel/cmd/wheel/root"
)

func main() {
	root.Execute()
}
