package ui

import (
	"testing"
	"time"

	"github.com/PoignardAzur/marquee/internal/task"
	"github.com/PoignardAzur/marquee/internal/widget"
)

const testFrame = 33 * time.Millisecond

func TestTileHighlightGrowsWhileSelected(t *testing.T) {
	host, root, runner := loadTree(t, threeRowFetcher())
	defer runner.Stop()

	tile := tilesOf(t, shelvesOf(t, root)[0])[0]
	if !tile.Selected() {
		t.Fatalf("expected the origin tile to be selected")
	}
	if tile.Progress() != 0 {
		t.Fatalf("expected progress 0 before any frame, got %d", tile.Progress())
	}

	for want := 1; want <= tileProgressMax; want++ {
		host.Anim(testFrame)
		if tile.Progress() != want {
			t.Fatalf("frame %d: expected progress %d, got %d", want, want, tile.Progress())
		}
	}

	host.Anim(testFrame)
	if tile.Progress() != tileProgressMax {
		t.Fatalf("expected progress to hold at %d, got %d", tileProgressMax, tile.Progress())
	}
}

func TestTileHighlightDecaysAfterDeselection(t *testing.T) {
	host, root, runner := loadTree(t, threeRowFetcher())
	defer runner.Stop()

	tile := tilesOf(t, shelvesOf(t, root)[0])[0]
	for i := 0; i < tileProgressMax; i++ {
		host.Anim(testFrame)
	}
	if tile.Progress() != tileProgressMax {
		t.Fatalf("expected full progress before deselection, got %d", tile.Progress())
	}

	host.Key("right")
	if tile.Selected() {
		t.Fatalf("expected tile to lose selection")
	}

	for want := tileProgressMax - 1; want >= 0; want-- {
		host.Anim(testFrame)
		if tile.Progress() != want {
			t.Fatalf("expected progress %d during decay, got %d", want, tile.Progress())
		}
	}

	host.Anim(testFrame)
	if tile.Progress() != 0 {
		t.Fatalf("expected progress to hold at 0, got %d", tile.Progress())
	}
}

func TestAnimationClockIdlesOnceTilesSettle(t *testing.T) {
	host, _, runner := loadTree(t, threeRowFetcher())
	defer runner.Stop()

	if !host.AnimRequested() {
		t.Fatalf("expected frames wanted while the selected tile grows")
	}
	for i := 0; i < tileProgressMax; i++ {
		host.Anim(testFrame)
	}
	if host.AnimRequested() {
		t.Fatalf("expected no frame request once every tile settled")
	}

	host.Key("right")
	if !host.AnimRequested() {
		t.Fatalf("expected a selection change to restart the clock")
	}
}

func TestImageLabel(t *testing.T) {
	cases := []struct {
		ref  string
		want string
	}{
		{"https://img.example.com/art/one.jpg", "one"},
		{"https://img.example.com/art/one.jpg?width=400", "one"},
		{"plain-ref", "plain-ref"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := imageLabel(tc.ref); got != tc.want {
			t.Fatalf("imageLabel(%q): expected %q, got %q", tc.ref, tc.want, got)
		}
	}
}

func TestTileSizeFollowsProgress(t *testing.T) {
	runner := task.NewRunner(1)
	defer runner.Stop()

	tile := NewTile(0, 0, "art", styles)
	col := widget.NewColumn()
	pod := col.Append(tile)
	host := widget.NewHost(col, runner)
	host.Mount()

	checks := []struct {
		progress int
		width    int
		height   int
	}{
		{0, 22, 7},
		{1, 22, 7},
		{2, 23, 8},
		{3, 23, 8},
		{4, 24, 8},
		{5, 24, 8},
	}
	for _, tc := range checks {
		tile.progress = tc.progress
		host.Layout(40, 20)
		if sz := pod.Size(); sz.Width != tc.width || sz.Height != tc.height {
			t.Fatalf("progress %d: expected %dx%d, got %dx%d",
				tc.progress, tc.width, tc.height, sz.Width, sz.Height)
		}
	}
}
