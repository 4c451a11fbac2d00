package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestManager_Edges(t *testing.T) {
	m := NewManager()

	m.HandleKey(glfw.KeyW, glfw.Press)
	if !m.IsActive(ActionMoveForward) || !m.JustPressed(ActionMoveForward) {
		t.Fatalf("press not recorded")
	}
	m.PostUpdate()
	m.HandleKey(glfw.KeyW, glfw.Repeat)
	if !m.IsActive(ActionMoveForward) || m.JustPressed(ActionMoveForward) {
		t.Fatalf("repeat should hold without a new edge")
	}
	m.HandleKey(glfw.KeyW, glfw.Release)
	if m.IsActive(ActionMoveForward) || !m.JustReleased(ActionMoveForward) {
		t.Fatalf("release not recorded")
	}
	m.PostUpdate()
	if m.JustReleased(ActionMoveForward) {
		t.Fatalf("edge survived PostUpdate")
	}
}

func TestManager_MouseAndUnbound(t *testing.T) {
	m := NewManager()
	m.HandleMouseButton(glfw.MouseButtonRight, glfw.Press)
	if !m.JustPressed(ActionPlaceBlock) {
		t.Fatalf("right click should place")
	}
	m.HandleKey(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if a != ActionPlaceBlock && m.IsActive(a) {
			t.Fatalf("unbound key activated %d", a)
		}
	}
	if m.IsActive(ActionCount) || m.JustPressed(-1) {
		t.Fatalf("out of range actions must be inactive")
	}
}

func TestManager_ExtraBinding(t *testing.T) {
	m := NewManager()
	m.BindKey(glfw.KeyUp, ActionMoveForward)
	m.HandleKey(glfw.KeyUp, glfw.Press)
	if !m.IsActive(ActionMoveForward) {
		t.Fatalf("extra binding ignored")
	}
}
