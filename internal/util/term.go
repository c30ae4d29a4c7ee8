package util

import (
	"os"
)

// IsATTY checks if stdout is a terminal
func IsATTY() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
