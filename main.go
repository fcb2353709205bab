package main

import (
	"solidity-foundry-detector/cmd"
	"solidity-foundry-detector/pkg/detector/detectors"
)

func main() {
	cmd.Run(detectors.SolidityFoundryDetector{})
}
