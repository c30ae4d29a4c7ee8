package progress

import (
	"testing"
)

func TestFileBarCompletes(t *testing.T) {
	bar := NewFileBar(3, "Updating", false)
	for i := 1; i <= 3; i++ {
		bar.Describe("part.tap", i)
		if err := bar.Add(1); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	if err := bar.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
}

// A run over zero files must not render or divide by the total.
func TestFileBarZeroTotal(t *testing.T) {
	bar := NewFileBar(0, "Updating", true)
	if err := bar.Finish(); err != nil {
		t.Fatalf("Finish() with zero total: error = %v", err)
	}
}
