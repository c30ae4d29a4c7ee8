package gcode

import (
	"fmt"
	"strconv"
)

// ValidateSpeed checks that the speed token is a whole number of RPM within
// the inclusive [min, max] range. The rewriter itself treats the speed as an
// opaque token; validation belongs at the input boundary.
func ValidateSpeed(speed string, min, max int) error {
	rpm, err := strconv.Atoi(speed)
	if err != nil {
		return fmt.Errorf("invalid spindle speed '%s': must be a whole number", speed)
	}
	if rpm < min || rpm > max {
		return fmt.Errorf("invalid spindle speed %d: must be between %d and %d RPM", rpm, min, max)
	}
	return nil
}
