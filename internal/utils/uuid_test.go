package utils

import (
	"regexp"
	"testing"
)

func TestUUIDGenerator_InviteCode(t *testing.T) {
	g := NewUUIDGenerator()
	code := g.InviteCode()

	if !regexp.MustCompile(`^[0-9A-F]{8}$`).MatchString(code) {
		t.Errorf("unexpected invite code %q", code)
	}
	if code == g.InviteCode() {
		t.Error("expected distinct codes")
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	if len(NewUUIDGenerator().Generate()) != 36 {
		t.Error("expected canonical uuid string")
	}
}
