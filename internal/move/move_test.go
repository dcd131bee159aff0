package move

import "testing"

func TestRegularAccessors(t *testing.T) {
	m := Regular(2, 3, 7)
	if m.From() != 2 || m.To() != 3 || m.Index() != 7 {
		t.Errorf("Regular accessors wrong: from=%d to=%d index=%d", m.From(), m.To(), m.Index())
	}
	if m.IsOff() || m.IsTalon() {
		t.Errorf("a regular move should be neither off nor talon")
	}
}

func TestFromTalon(t *testing.T) {
	m := FromTalon(4)
	if !m.IsTalon() {
		t.Errorf("FromTalon should report IsTalon()")
	}
	if m.From() != 4 {
		t.Errorf("From() = %d, want 4", m.From())
	}
}

func TestOff(t *testing.T) {
	m := Off(5, 10)
	if !m.IsOff() {
		t.Errorf("Off should report IsOff()")
	}
	if m.From() != 5 || m.Index() != 10 {
		t.Errorf("Off accessors wrong: from=%d index=%d", m.From(), m.Index())
	}
}

func TestInvalidSentinel(t *testing.T) {
	if !Invalid.IsInvalid() {
		t.Errorf("Invalid should report IsInvalid()")
	}
	if Regular(0, 1, 0).IsInvalid() {
		t.Errorf("a normal move should not be invalid")
	}
}

func TestEquality(t *testing.T) {
	a := Regular(1, 2, 3)
	b := Regular(1, 2, 3)
	c := Regular(1, 2, 4)
	if a != b {
		t.Errorf("structurally identical moves should be equal")
	}
	if a == c {
		t.Errorf("moves differing by index should not be equal")
	}
}
