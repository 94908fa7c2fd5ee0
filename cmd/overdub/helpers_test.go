package main

import (
	"strings"
	"testing"
)

func TestParsePosition(t *testing.T) {
	index, err := parsePosition("3", "song")
	if err != nil || index != 2 {
		t.Fatalf("parsePosition(3) = %d, %v", index, err)
	}
	if _, err := parsePosition("0", "song"); err == nil {
		t.Fatal("expected error for position 0")
	}
	if _, err := parsePosition("abc", "song"); err == nil {
		t.Fatal("expected error for non-numeric position")
	}
}

func TestParseOnOff(t *testing.T) {
	for _, arg := range []string{"on", "TRUE", "yes", "1"} {
		v, err := parseOnOff(arg)
		if err != nil || !v {
			t.Fatalf("parseOnOff(%q) = %v, %v", arg, v, err)
		}
	}
	for _, arg := range []string{"off", "False", "no", "0"} {
		v, err := parseOnOff(arg)
		if err != nil || v {
			t.Fatalf("parseOnOff(%q) = %v, %v", arg, v, err)
		}
	}
	if _, err := parseOnOff("maybe"); err == nil {
		t.Fatal("expected error for unrecognized toggle")
	}
}

func TestRenderProgress(t *testing.T) {
	plain := renderProgress(50, false)
	if !strings.HasSuffix(plain, "50%") {
		t.Fatalf("unexpected suffix: %q", plain)
	}
	if strings.Count(plain, "█") != 10 || strings.Count(plain, "░") != 10 {
		t.Fatalf("unexpected bar fill: %q", plain)
	}
	if strings.Contains(plain, "\x1b[") {
		t.Fatalf("plain bar should have no color codes: %q", plain)
	}

	colored := renderProgress(100, true)
	if !strings.Contains(colored, ansiGreen) {
		t.Fatalf("complete bar should be green: %q", colored)
	}
	partial := renderProgress(1, true)
	if !strings.Contains(partial, ansiYellow) {
		t.Fatalf("partial bar should be yellow: %q", partial)
	}
}
