package main

import "testing"

func TestScriptedSwingReversesAtTheStops(t *testing.T) {
	const limit, rate = 35.0, 6.0

	if got := scriptedSwing(34.6, limit, rate, rate); got != -rate {
		t.Fatalf("near the starboard stop command = %v, want %v", got, -rate)
	}
	if got := scriptedSwing(-34.6, limit, rate, -rate); got != rate {
		t.Fatalf("near the port stop command = %v, want %v", got, rate)
	}
	if got := scriptedSwing(0, limit, rate, -rate); got != -rate {
		t.Fatalf("mid-swing should hold the current command, got %v", got)
	}
}
