package controller

import "testing"

func TestShiftOutButtonsInOrder(t *testing.T) {
	var c Controller
	c.SetButtons(A | Start | Right)

	c.Write(1) // strobe high, latch live state
	c.Write(0) // strobe low, begin shifting

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1} // A, B, Select, Start, Up, Down, Left, Right
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadPastEighthBitReturnsOne(t *testing.T) {
	var c Controller
	c.SetButtons(0)
	c.Write(1)
	c.Write(0)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	if got := c.Read(); got != 1 {
		t.Errorf("9th read = %d, want 1", got)
	}
}

func TestStrobeHighAlwaysReportsButtonA(t *testing.T) {
	var c Controller
	c.SetButtons(A)
	c.Write(1)
	if got := c.Read(); got != 1 {
		t.Errorf("Read() while strobed = %d, want 1", got)
	}
	if got := c.Read(); got != 1 {
		t.Errorf("repeated Read() while strobed = %d, want 1 (always A)", got)
	}
}

func TestSetButtonsDuringStrobeUpdatesLiveState(t *testing.T) {
	var c Controller
	c.Write(1) // strobe high
	c.SetButtons(B)
	if got := c.Read(); got != 0 {
		t.Errorf("Read() = %d, want 0 (B is not A)", got)
	}
}
