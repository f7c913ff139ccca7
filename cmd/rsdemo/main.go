package main

import (
	reedsolomon "github.com/sp6hfe/ReedSolomon/src"
)

func main() {
	reedsolomon.DemoMain()
}
