package timer

import (
	"testing"
	"time"
)

func TestInspection_ExpiresIntoSolveClock(t *testing.T) {
	tm := New(DefaultInspection)
	tm.StartInspection()
	tm.Advance(10 * time.Second)
	if tm.Phase() != Inspecting || tm.Remaining() != 5*time.Second {
		t.Fatalf("expected 5s of inspection left, got %s %v", tm.Phase(), tm.Remaining())
	}
	tm.Advance(7 * time.Second)
	if tm.Phase() != Running {
		t.Fatalf("expected running, got %s", tm.Phase())
	}
	if tm.Elapsed() != 2*time.Second {
		t.Errorf("overrun should count, got %v", tm.Elapsed())
	}
}

func TestStart_EndsInspectionEarly(t *testing.T) {
	tm := New(DefaultInspection)
	tm.StartInspection()
	tm.Advance(3 * time.Second)
	tm.Start()
	tm.Advance(1500 * time.Millisecond)
	if got := tm.Stop(); got != 1500*time.Millisecond {
		t.Errorf("expected 1.5s, got %v", got)
	}
	tm.Advance(time.Second)
	if tm.Elapsed() != 1500*time.Millisecond || tm.Phase() != Stopped {
		t.Error("stopped clock must not advance")
	}
}

func TestZeroInspection(t *testing.T) {
	tm := New(0)
	tm.StartInspection()
	if tm.Phase() != Running {
		t.Errorf("expected running, got %s", tm.Phase())
	}
}

func TestFormat(t *testing.T) {
	cases := map[time.Duration]string{
		0:                                    "00:00.00",
		1234 * time.Millisecond:              "00:01.23",
		61*time.Second + 50*time.Millisecond: "01:01.05",
		-time.Second:                         "00:00.00",
	}
	for d, want := range cases {
		if got := Format(d); got != want {
			t.Errorf("Format(%v) = %q, want %q", d, got, want)
		}
	}
}
