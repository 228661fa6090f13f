package png

import "testing"

func TestPlanPassesNonInterlaced(t *testing.T) {
	passes := planPasses(0, 37, 19)
	if len(passes) != 1 {
		t.Fatalf("got %d passes, want 1", len(passes))
	}
	if passes[0].width != 37 || passes[0].height != 19 {
		t.Fatalf("got %dx%d, want 37x19", passes[0].width, passes[0].height)
	}
}

func TestAdam7PassDimensions(t *testing.T) {
	// An 8x8 image: each of the 7 passes owns exactly one pixel row/column
	// combination per the canonical Adam7 diagram.
	want := []struct{ w, h int }{
		{1, 1}, // pass 1: x=0
		{1, 1}, // pass 2: x=4
		{2, 1}, // pass 3: x=0,4 y=4
		{2, 2}, // pass 4: x=2,6 y=0,4
		{4, 2}, // pass 5: x=0,2,4,6 y=2,6
		{4, 4}, // pass 6: x=1,3,5,7 y=0,2,4,6
		{8, 4}, // pass 7: x=0..7 y=1,3,5,7
	}
	for i, g := range adam7Passes {
		w, h := g.dimensions(8, 8)
		if w != want[i].w || h != want[i].h {
			t.Errorf("pass %d: got %dx%d, want %dx%d", i+1, w, h, want[i].w, want[i].h)
		}
	}
}

func TestAdam7PassDimensionsSmallImage(t *testing.T) {
	// A 1x1 image: only pass 1 (startX=0,startY=0) owns the single pixel.
	for i, g := range adam7Passes {
		w, h := g.dimensions(1, 1)
		if i == 0 {
			if w != 1 || h != 1 {
				t.Fatalf("pass 1: got %dx%d, want 1x1", w, h)
			}
			continue
		}
		if w != 0 || h != 0 {
			t.Errorf("pass %d: got %dx%d, want 0x0 for a 1x1 image", i+1, w, h)
		}
	}
}

func TestPlanPassesInterlacedSkipsEmptyPasses(t *testing.T) {
	passes := planPasses(1, 1, 1)
	if len(passes) != 1 {
		t.Fatalf("got %d passes for a 1x1 interlaced image, want 1", len(passes))
	}
}

func TestPlanPassesInterlacedCoversAllPixels(t *testing.T) {
	w, h := 8, 8
	passes := planPasses(1, w, h)
	if len(passes) != 7 {
		t.Fatalf("got %d passes, want 7", len(passes))
	}
	covered := make([][]bool, h)
	for i := range covered {
		covered[i] = make([]bool, w)
	}
	for _, p := range passes {
		g := p.geometry
		for row := 0; row < p.height; row++ {
			y := g.startY + row*g.strideY
			for col := 0; col < p.width; col++ {
				x := g.startX + col*g.strideX
				if covered[y][x] {
					t.Fatalf("pixel (%d,%d) covered by more than one pass", x, y)
				}
				covered[y][x] = true
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !covered[y][x] {
				t.Errorf("pixel (%d,%d) not covered by any pass", x, y)
			}
		}
	}
}
