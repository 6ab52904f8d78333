package core

import "testing"

func TestInputFrameTick(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.AddPointer(PointerDown, 0.25, 0.5)
	f.AddPointer(PointerDrag, 0.4, 0.5)
	f.AddPointer(PointerUp, 0.4, 0.5)

	if !f.Has(ActionConfirm) || f.Has(ActionBack) {
		t.Errorf("actions = %v, want Confirm only", f.Actions)
	}
	var kinds []PointerKind
	for _, p := range f.Pointers {
		kinds = append(kinds, p.Kind)
	}
	if len(kinds) != 3 || kinds[0] != PointerDown || kinds[1] != PointerDrag || kinds[2] != PointerUp {
		t.Errorf("pointer kinds = %v, want a down-drag-up swipe", kinds)
	}

	f.Clear()
	if len(f.Actions) != 0 || len(f.Pointers) != 0 {
		t.Errorf("after Clear: %+v", f)
	}

	var zero InputFrame
	if zero.Has(ActionBack) {
		t.Error("zero frame has actions")
	}
	zero.Set(ActionBack)
	if !zero.Has(ActionBack) {
		t.Error("Set on a zero frame was lost")
	}
}

func TestInputNames(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{ActionNone.String(), "None"},
		{ActionConfirm.String(), "Confirm"},
		{ActionInfo.String(), "Info"},
		{Action(-1).String(), "Unknown"},
		{Action(99).String(), "Unknown"},
		{PointerDrag.String(), "Drag"},
		{PointerKind(7).String(), "Unknown"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}
