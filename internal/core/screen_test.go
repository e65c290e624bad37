package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.Get(x, y); got != blank {
				t.Fatalf("new screen should be blank sky, got %+v at (%d, %d)", got, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, '@', ColorBird)
	if got := s.Get(5, 5); got != (Cell{Rune: '@', Color: ColorBird}) {
		t.Errorf("Get(5, 5) = %+v", got)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A', ColorText)
	s.Set(100, 0, 'A', ColorText)
	s.Set(0, -1, 'A', ColorText)
	s.Set(0, 100, 'A', ColorText)

	if s.Get(-1, 0) != blank || s.Get(0, 100) != blank {
		t.Error("out of bounds Get should return a blank cell")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'x', ColorText)

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != blank {
		t.Error("Resize should clear the buffer")
	}

	s.Set(0, 0, 'y', ColorText)
	s.Resize(6, 3)
	if s.Get(0, 0) != blank {
		t.Error("same-size Resize should still clear")
	}

	s.Resize(-3, 2)
	if s.Width() != 0 || s.Row(0) != "" {
		t.Errorf("negative width should become zero, got %d", s.Width())
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillRect(NewRect(3, -2, 10, 4), '#', ColorPipe)

	want := []string{
		"   ##",
		"   ##",
		"     ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
	if s.Get(4, 0).Color != ColorPipe {
		t.Error("filled cell should carry the fill color")
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(11, 2)
	s.TextCentered(0, "SCORE", ColorScore)
	s.Text(8, 1, "clipped", ColorText)

	if got := s.Row(0); got != "   SCORE   " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "        cli" {
		t.Errorf("Row(1) = %q", got)
	}

	// Multi-byte runes take one cell each
	s.Clear()
	s.TextCentered(0, "▲▲▲", ColorText)
	if got := s.Row(0); got != "    ▲▲▲    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.FillRect(s.Bounds(), '.', ColorSky)
	s.Box(NewRect(0, 0, 5, 4), ColorBoard)

	want := "┌───┐\n│   │\n│   │\n└───┘"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}

	s.Clear()
	s.Box(NewRect(1, 1, 1, 1), ColorBoard)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("degenerate box should draw nothing")
	}
}

func TestScreenRuns(t *testing.T) {
	s := NewScreen(6, 1)
	s.Text(0, 0, "ab", ColorText)
	s.Set(4, 0, '@', ColorBird)

	type run struct {
		text  string
		color Color
	}
	var got []run
	s.Runs(0, func(text string, c Color) {
		got = append(got, run{text, c})
	})

	want := []run{
		{"ab", ColorText},
		{"  ", ColorSky},
		{"@", ColorBird},
		{" ", ColorSky},
	}
	if len(got) != len(want) {
		t.Fatalf("Runs() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, expected %+v", i, got[i], want[i])
		}
	}

	calls := 0
	s.Runs(5, func(string, Color) { calls++ })
	if calls != 0 {
		t.Error("Runs outside the screen should not call back")
	}
}

func TestColorAndIntentNames(t *testing.T) {
	if ColorPipeCap.String() != "PipeCap" || Color(200).String() != "Unknown" {
		t.Error("unexpected Color names")
	}
	if IntentFlap.String() != "Flap" || Intent(42).String() != "Unknown" {
		t.Error("unexpected Intent names")
	}
}
