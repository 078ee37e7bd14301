// Package platform holds the per-frame collaborators the engine reads from and
// writes to: the gamepad snapshot and the sound request queue.
package platform

import (
	"fmt"
	"strings"
)

// Button is a set of gamepad buttons.
type Button uint8

const (
	Up Button = 1 << iota
	Down
	Left
	Right
	A
	B
	Start
	Select
)

var buttonNames = []struct {
	button Button
	name   string
}{
	{Up, "up"},
	{Down, "down"},
	{Left, "left"},
	{Right, "right"},
	{A, "a"},
	{B, "b"},
	{Start, "start"},
	{Select, "select"},
}

// Contains reports whether every button in other is in b.
func (b Button) Contains(other Button) bool { return b&other == other }

func (b Button) String() string {
	var names []string
	for _, entry := range buttonNames {
		if b.Contains(entry.button) {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseButton maps a client button name to its Button.
func ParseButton(name string) (Button, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, entry := range buttonNames {
		if entry.name == name {
			return entry.button, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// Input is the gamepad state for the current frame and the one before it.
type Input struct {
	Gamepad  Button
	Previous Button
}

// PressedThisFrame reports whether button went down since the last frame.
func (in Input) PressedThisFrame(button Button) bool {
	return in.Gamepad.Contains(button) && !in.Previous.Contains(button)
}

// Press marks button as held. Pressing a button that was already held in the
// previous frame counts as a fresh press, which lets key repeat through.
func (in *Input) Press(button Button) {
	if in.Previous.Contains(button) {
		in.Previous &^= button
	}
	in.Gamepad |= button
}

// Release marks button as no longer held.
func (in *Input) Release(button Button) {
	in.Gamepad &^= button
}

// EndFrame remembers the current state for the next frame's edge detection.
func (in *Input) EndFrame() {
	in.Previous = in.Gamepad
}
