package board

import (
	"errors"
	"reflect"
	"testing"

	"pathboard/internal/nav"
)

func TestParse_Simple(t *testing.T) {
	b, err := Parse("S.X\n")
	if err != nil {
		t.Fatal(err)
	}
	if b.Grid.Width != 3 || b.Grid.Height != 1 {
		t.Fatalf("grid is %dx%d, want 3x1", b.Grid.Width, b.Grid.Height)
	}
	if b.Start != (nav.Coord{X: 0, Y: 0}) || b.End != (nav.Coord{X: 2, Y: 0}) {
		t.Fatalf("markers start=%v end=%v", b.Start, b.End)
	}
}

func TestParse_MarkersAreOpenGround(t *testing.T) {
	b, err := Parse("S.X")
	if err != nil {
		t.Fatal(err)
	}
	if b.Grid.Blocked(0, 0) || b.Grid.Blocked(2, 0) {
		t.Fatal("marker cells must be traversable")
	}
}

func TestParse_PadsShortRows(t *testing.T) {
	b, err := Parse("S.\n.BX.\n")
	if err != nil {
		t.Fatal(err)
	}
	if b.Grid.Width != 4 {
		t.Fatalf("width = %d, want 4 (longest row)", b.Grid.Width)
	}
	// The padded tail of the first row is open ground.
	if b.Grid.Blocked(2, 0) || b.Grid.Blocked(3, 0) {
		t.Fatal("padding should be open cells")
	}
	if !b.Grid.Blocked(1, 1) {
		t.Fatal("wall cell lost during padding")
	}
}

func TestParse_Empty(t *testing.T) {
	for _, text := range []string{"", "\n", "\n\n"} {
		if _, err := Parse(text); !errors.Is(err, ErrEmpty) {
			t.Fatalf("Parse(%q) = %v, want ErrEmpty", text, err)
		}
	}
}

func TestParse_MarkerCount(t *testing.T) {
	for _, text := range []string{"..X", "S..", "S.SX", "SXX", "..."} {
		if _, err := Parse(text); !errors.Is(err, ErrMarkers) {
			t.Fatalf("Parse(%q) = %v, want ErrMarkers", text, err)
		}
	}
}

func TestParse_UnexpectedCharacter(t *testing.T) {
	_, err := Parse("S?X")
	if err == nil {
		t.Fatal("unknown rune should be rejected")
	}
	if errors.Is(err, ErrMarkers) || errors.Is(err, ErrEmpty) {
		t.Fatalf("wrong error category: %v", err)
	}
}

func TestSolve_ReachableEnd(t *testing.T) {
	b, err := Parse("S.X")
	if err != nil {
		t.Fatal(err)
	}
	path, err := b.Solve()
	if err != nil {
		t.Fatal(err)
	}
	want := []nav.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if !reflect.DeepEqual(path, want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
}

func TestSolve_UnreachableEndDegrades(t *testing.T) {
	b, err := Parse("SBX")
	if err != nil {
		t.Fatal(err)
	}
	path, err := b.Solve()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(path, []nav.Coord{{X: 0, Y: 0}}) {
		t.Fatalf("walled-off start should degrade to [start], got %v", path)
	}
}

func TestFormatSolution(t *testing.T) {
	b, err := Parse("S.X\n.B.\n")
	if err != nil {
		t.Fatal(err)
	}
	path, err := b.Solve()
	if err != nil {
		t.Fatal(err)
	}
	got := FormatSolution(b, path)
	want := "***\n.B.\n"
	if got != want {
		t.Fatalf("solution board:\n%q\nwant:\n%q", got, want)
	}
}
