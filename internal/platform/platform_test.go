package platform

import (
	"reflect"
	"testing"
)

func TestPressedThisFrame(t *testing.T) {
	var in Input
	in.Press(A)
	if !in.PressedThisFrame(A) {
		t.Fatalf("A not reported on the frame it went down")
	}
	in.EndFrame()
	if in.PressedThisFrame(A) {
		t.Fatalf("held A reported as a new press")
	}

	// key repeat: the host presses again without a release
	in.Press(A)
	if !in.PressedThisFrame(A) {
		t.Fatalf("repeated press was swallowed")
	}

	in.Release(A)
	in.EndFrame()
	if in.Gamepad.Contains(A) || in.PressedThisFrame(A) {
		t.Fatalf("released A still held: %s", in.Gamepad)
	}
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		name    string
		want    Button
		wantErr bool
	}{
		{name: "left", want: Left},
		{name: " Start ", want: Start},
		{name: "b", want: B},
		{name: "jump", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseButton(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.name)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseButton(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
			}
		})
	}
}

func TestSpeakerDrain(t *testing.T) {
	var s Speaker
	s.RequestSFX(CardSlide)
	s.RequestSFX(CardSlide)

	if got := s.Drain(); !reflect.DeepEqual(got, []SFX{CardSlide, CardSlide}) {
		t.Fatalf("Drain() = %v", got)
	}
	if got := s.Drain(); len(got) != 0 {
		t.Fatalf("second Drain() = %v, want empty", got)
	}
}
