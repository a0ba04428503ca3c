package lines

import "testing"

func TestBufferPositionalQueries(t *testing.T) {
	b := New([]string{"first", "second", "third"})
	if b.Len() != 3 {
		t.Fatalf("unexpected len=%d", b.Len())
	}
	if got := b.Line(0); got != "first" {
		t.Fatalf("line 0 got=%q", got)
	}
	if got := b.Line(-1); got != "third" {
		t.Fatalf("line -1 got=%q", got)
	}
	if got := b.Line(3); got != "" {
		t.Fatalf("out of range got=%q", got)
	}
	if got := b.Line(-4); got != "" {
		t.Fatalf("negative out of range got=%q", got)
	}
	if got := b.String(); got != "first\nsecond\nthird" {
		t.Fatalf("join got=%q", got)
	}
}

func TestBufferSubstringQueries(t *testing.T) {
	b := New([]string{"/dev/block/mmcblk0", "/dev/block/loop0", "tmpfs"})
	if !b.Contains("loop0") {
		t.Fatalf("expected loop0 match")
	}
	if b.Contains("zram") {
		t.Fatalf("unexpected zram match")
	}
	got := b.Match("/dev/block")
	if len(got) != 2 || got[0] != "/dev/block/mmcblk0" {
		t.Fatalf("unexpected match set: %+v", got)
	}
}

func TestBufferCopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	b := New(in)
	in[0] = "mutated"
	if b.Line(0) != "a" {
		t.Fatalf("buffer aliased caller slice")
	}
	out := b.Lines()
	out[1] = "mutated"
	if b.Line(1) != "b" {
		t.Fatalf("buffer exposed internal slice")
	}
}

func TestBufferEmpty(t *testing.T) {
	b := New(nil)
	if b.Len() != 0 || b.String() != "" || b.Line(0) != "" {
		t.Fatalf("unexpected empty buffer behavior: %+v", b)
	}
	if got := b.Lines(); len(got) != 0 {
		t.Fatalf("unexpected lines: %+v", got)
	}
}
