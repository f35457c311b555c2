package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	setFlags()
	var b bytes.Buffer
	printUsage(&b)
	var line string
	for _, l := range strings.Split(b.String(), "\n") {
		if strings.Contains(l, "quiet zone modules") {
			line = l
		}
	}
	if line == "" {
		t.Fatalf("no -b in usage:\n%s", b.String())
	}
	if n := strings.Count(line, "[2]"); n != 1 {
		t.Errorf("expected default [2] once, got %q", line)
	}
}
