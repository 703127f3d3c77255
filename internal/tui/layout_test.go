package tui

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 1}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top left corner", 2, 3, true},
		{"inside", 4, 3, true},
		{"right edge exclusive", 6, 3, false},
		{"above", 3, 2, false},
		{"below", 3, 4, false},
		{"left of", 1, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestButtonZonesDoNotOverlap(t *testing.T) {
	zones := buttonZones(2048)

	controls := make([]control, 0, len(zones))
	for ctl := range zones {
		controls = append(controls, ctl)
	}

	for i, a := range controls {
		for _, b := range controls[i+1:] {
			ra, rb := zones[a], zones[b]
			if ra.Y != rb.Y {
				continue
			}
			if ra.X < rb.X+rb.W && rb.X < ra.X+ra.W {
				t.Errorf("zones %v and %v overlap: %+v vs %+v", a, b, ra, rb)
			}
		}
	}
}

func TestHitControl(t *testing.T) {
	zones := buttonZones(2048)

	for ctl, zone := range zones {
		if got := hitControl(2048, zone.X, zone.Y); got != ctl {
			t.Errorf("hitControl at %d,%d = %v, want %v", zone.X, zone.Y, got, ctl)
		}
	}

	if got := hitControl(2048, 0, 0); got != ctlNone {
		t.Errorf("hitControl at 0,0 = %v, want ctlNone", got)
	}
}

func TestTargetLabelResizesZone(t *testing.T) {
	narrow := buttonZones(2048)[ctlTarget]
	wide := buttonZones(8192)[ctlTarget]

	if narrow.W != wide.W {
		t.Errorf("target widths differ for same digit count: %d vs %d", narrow.W, wide.W)
	}

	label := targetLabel(4096)
	if want := "Target: 4096"; label != want {
		t.Errorf("targetLabel(4096) = %q, want %q", label, want)
	}
}
