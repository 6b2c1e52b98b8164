package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestActionIsDirectional(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirectional() {
			t.Errorf("%v should be directional", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionQuit} {
		if a.IsDirectional() {
			t.Errorf("%v should not be directional", a)
		}
	}
}

func TestStatusTerminated(t *testing.T) {
	if StatusRunning.Terminated() {
		t.Error("running should not be terminated")
	}
	if !StatusQuit.Terminated() || !StatusCollision.Terminated() {
		t.Error("quit and collision should be terminated")
	}
	if StatusCollision.String() != "collision" {
		t.Errorf("StatusCollision.String() = %q", StatusCollision.String())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"", ColorDefault, true},
		{"green", ColorGreen, true},
		{"Bright_Red", ColorBrightRed, true},
		{"gray", ColorGray, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if ok != tc.ok || (ok && got != tc.expected) {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.expected, tc.ok)
		}
	}
}
