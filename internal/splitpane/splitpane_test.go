package splitpane

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/xonecas/panes/internal/layout"
)

func TestNewDefaults(t *testing.T) {
	p := New(Horizontal)
	if p.Direction() != Horizontal {
		t.Errorf("direction = %v, want horizontal", p.Direction())
	}
	if p.SplitSize() != Percentage(50) {
		t.Errorf("size = %v, want 50%%", p.SplitSize())
	}
	if !p.Resizable() || !p.ShowSeparator() {
		t.Errorf("expected resizable pane with separator")
	}
	if p.FocusedPane() != 0 {
		t.Errorf("focused = %d, want 0", p.FocusedPane())
	}
	if p.MinSize() != 10 {
		t.Errorf("min size = %d, want 10", p.MinSize())
	}
	bs := p.BorderStyle()
	if !bs.ShowBorders || bs.FocusedBorderType != BorderThick || bs.UnfocusedBorderType != BorderPlain {
		t.Errorf("unexpected default border style %+v", bs)
	}
	if p.UnfocusedBorders() {
		t.Errorf("unfocused borders should be off by default")
	}
}

func TestBuilderDoesNotValidate(t *testing.T) {
	p := New(Vertical).WithSplitSize(Percentage(95)).WithMinSize(10)
	if p.SplitSize() != Percentage(95) {
		t.Fatalf("builder should keep out-of-range size, got %v", p.SplitSize())
	}
	// Geometry uses the value as supplied.
	a, b := p.CalculatePanes(image.Rect(0, 0, 10, 100))
	if a.Dy() != 95 || b.Dy() != 5 {
		t.Fatalf("got heights %d/%d, want 95/5", a.Dy(), b.Dy())
	}
	// The next resize catches it, even with a zero delta.
	if err := p.Resize(0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if err := p.Resize(-5); err != nil {
		t.Fatalf("resize back into range: %v", err)
	}
	if p.SplitSize() != Percentage(90) {
		t.Fatalf("size = %v, want 90%%", p.SplitSize())
	}
}

func TestWithSplitSizeIgnoresNil(t *testing.T) {
	p := New(Horizontal).WithSplitSize(nil)
	if p.SplitSize() != Percentage(50) {
		t.Fatalf("size = %v, want 50%%", p.SplitSize())
	}
}

func TestSplitSizeConstraint(t *testing.T) {
	tests := []struct {
		size SplitSize
		want layout.Constraint
		str  string
	}{
		{Percentage(30), layout.Percentage(30), "30%"},
		{Fixed(20), layout.Length(20), "fixed(20)"},
		{Min(5), layout.Min(5), "min(5)"},
	}
	for _, tt := range tests {
		if got := tt.size.Constraint(); got != tt.want {
			t.Errorf("%v.Constraint() = %v, want %v", tt.size, got, tt.want)
		}
		if got := tt.size.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}
}

func TestToggleFocusRoundTrip(t *testing.T) {
	p := New(Horizontal)
	for _, start := range []int{0, 1} {
		if err := p.SetFocusedPane(start); err != nil {
			t.Fatal(err)
		}
		p.ToggleFocus()
		if p.FocusedPane() == start {
			t.Fatalf("toggle did not move focus from %d", start)
		}
		p.ToggleFocus()
		if p.FocusedPane() != start {
			t.Fatalf("double toggle: focus = %d, want %d", p.FocusedPane(), start)
		}
	}
	for n := 0; n <= 20; n += 2 {
		before := p.FocusedPane()
		for i := 0; i < n; i++ {
			p.ToggleFocus()
		}
		if p.FocusedPane() != before {
			t.Fatalf("%d toggles changed focus from %d to %d", n, before, p.FocusedPane())
		}
	}
}

func TestSetFocusedPaneRejectsInvalid(t *testing.T) {
	p := New(Horizontal)
	if err := p.SetFocusedPane(1); err != nil {
		t.Fatal(err)
	}
	for _, pane := range []int{2, -1, math.MaxInt} {
		err := p.SetFocusedPane(pane)
		var paneErr *InvalidPaneError
		if !errors.As(err, &paneErr) || paneErr.Pane != pane {
			t.Fatalf("SetFocusedPane(%d) = %v, want InvalidPaneError(%d)", pane, err, pane)
		}
		if !errors.Is(err, ErrInvalidPane) {
			t.Fatalf("error %v does not match ErrInvalidPane", err)
		}
		if p.FocusedPane() != 1 {
			t.Fatalf("focus changed to %d after invalid call", p.FocusedPane())
		}
	}
}

func TestResizeBoundaries(t *testing.T) {
	for delta := -40; delta <= 40; delta++ {
		p := New(Horizontal)
		if err := p.Resize(delta); err != nil {
			t.Fatalf("Resize(%d) = %v, want success", delta, err)
		}
		if want := Percentage(50 + delta); p.SplitSize() != want {
			t.Fatalf("Resize(%d): size = %v, want %v", delta, p.SplitSize(), want)
		}
	}
	for _, delta := range []int{41, -41, 1000, -1000, math.MinInt32, math.MaxInt32} {
		p := New(Horizontal)
		before := *p
		err := p.Resize(delta)
		var sizeErr *InvalidSizeError
		if !errors.As(err, &sizeErr) || sizeErr.Size != 50+delta {
			t.Fatalf("Resize(%d) = %v, want InvalidSizeError(%d)", delta, err, 50+delta)
		}
		if *p != before {
			t.Fatalf("Resize(%d) mutated pane after failure", delta)
		}
	}
}

func TestResizeExtremeDeltaSaturates(t *testing.T) {
	tests := []struct {
		size  SplitSize
		delta int
		want  int
	}{
		{Percentage(50), math.MaxInt, math.MaxInt},
		{Percentage(50), math.MinInt, 50 + math.MinInt},
		{Fixed(20), math.MaxInt, math.MaxInt},
		{Min(5), math.MaxInt - 2, math.MaxInt},
	}
	for _, tt := range tests {
		p := New(Horizontal).WithSplitSize(tt.size)
		err := p.Resize(tt.delta)
		var sizeErr *InvalidSizeError
		if !errors.As(err, &sizeErr) || sizeErr.Size != tt.want {
			t.Fatalf("%v.Resize(%d) = %v, want InvalidSizeError(%d)", tt.size, tt.delta, err, tt.want)
		}
		if p.SplitSize() != tt.size {
			t.Fatalf("%v.Resize(%d) changed size to %v", tt.size, tt.delta, p.SplitSize())
		}
	}
}

func TestResizeReversible(t *testing.T) {
	for d := -40; d <= 40; d++ {
		p := New(Horizontal)
		if err := p.Resize(d); err != nil {
			continue
		}
		if err := p.Resize(-d); err != nil {
			t.Fatalf("Resize(%d) after Resize(%d): %v", -d, d, err)
		}
		if p.SplitSize() != Percentage(50) {
			t.Fatalf("d=%d: size = %v, want 50%%", d, p.SplitSize())
		}
	}
}

func TestResizeNotResizable(t *testing.T) {
	p := New(Horizontal).WithResizable(false).WithSplitSize(Fixed(30))
	for i := 0; i < 100; i++ {
		delta := (i - 50) * 37
		if err := p.Resize(delta); err != nil {
			t.Fatalf("Resize(%d) on fixed pane = %v, want nil", delta, err)
		}
		if p.SplitSize() != Fixed(30) {
			t.Fatalf("Resize(%d) changed size to %v", delta, p.SplitSize())
		}
	}
}

func TestResizeFixed(t *testing.T) {
	p := New(Horizontal).WithSplitSize(Fixed(30)).WithMinSize(10)
	if err := p.Resize(500); err != nil {
		t.Fatalf("fixed has no upper bound below the extent limit: %v", err)
	}
	if p.SplitSize() != Fixed(530) {
		t.Fatalf("size = %v, want fixed(530)", p.SplitSize())
	}
	if err := p.Resize(-520); err != nil {
		t.Fatal(err)
	}
	err := p.Resize(-1)
	var sizeErr *InvalidSizeError
	if !errors.As(err, &sizeErr) || sizeErr.Size != 9 {
		t.Fatalf("Resize(-1) = %v, want InvalidSizeError(9)", err)
	}
	if p.SplitSize() != Fixed(10) {
		t.Fatalf("size = %v, want fixed(10)", p.SplitSize())
	}
	if err := p.Resize(math.MaxUint16); err == nil {
		t.Fatal("expected overflow past the extent limit to fail")
	}
}

func TestResizeMin(t *testing.T) {
	p := New(Vertical).WithSplitSize(Min(5)).WithMinSize(10)
	if err := p.Resize(-5); err != nil {
		t.Fatalf("min may shrink to zero regardless of min size: %v", err)
	}
	if p.SplitSize() != Min(0) {
		t.Fatalf("size = %v, want min(0)", p.SplitSize())
	}
	err := p.Resize(-1)
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Resize(-1) = %v, want ErrInvalidSize", err)
	}
	if err := p.Resize(2000); err != nil {
		t.Fatal(err)
	}
	if p.SplitSize() != Min(2000) {
		t.Fatalf("size = %v, want min(2000)", p.SplitSize())
	}
}

func TestResizeInvertedRange(t *testing.T) {
	p := New(Horizontal).WithMinSize(60)
	for _, d := range []int{-10, 0, 10} {
		if err := p.Resize(d); err == nil {
			t.Fatalf("Resize(%d) succeeded with min size above 50", d)
		}
	}
	if p.SplitSize() != Percentage(50) {
		t.Fatalf("size = %v, want 50%%", p.SplitSize())
	}
}

func TestConcreteScenario(t *testing.T) {
	area := image.Rect(0, 0, 100, 50)
	p := New(Horizontal)

	a, b := p.CalculatePanes(area)
	if a.Dx() != 50 || a.Dy() != 50 || b.Dx() != 50 || b.Dy() != 50 {
		t.Fatalf("initial panes %v %v, want 50x50 each", a, b)
	}

	if err := p.Resize(10); err != nil {
		t.Fatal(err)
	}
	if p.SplitSize() != Percentage(60) {
		t.Fatalf("size = %v, want 60%%", p.SplitSize())
	}
	a, b = p.CalculatePanes(area)
	if a.Dx() != 60 || a.Dy() != 50 || b.Dx() != 40 || b.Dy() != 50 {
		t.Fatalf("resized panes %v %v, want 60x50 and 40x50", a, b)
	}
	if b.Min.X != 60 {
		t.Fatalf("second pane starts at %d, want 60", b.Min.X)
	}

	err := p.Resize(-100)
	var sizeErr *InvalidSizeError
	if !errors.As(err, &sizeErr) || sizeErr.Size != -40 {
		t.Fatalf("Resize(-100) = %v, want InvalidSizeError(-40)", err)
	}
	if p.SplitSize() != Percentage(60) {
		t.Fatalf("size = %v after failed resize, want 60%%", p.SplitSize())
	}
}

func TestMinSizeBoundaryScenario(t *testing.T) {
	p := New(Horizontal).WithMinSize(10).WithSplitSize(Percentage(50))
	if err := p.Resize(-40); err != nil {
		t.Fatalf("Resize(-40) = %v", err)
	}
	if p.SplitSize() != Percentage(10) {
		t.Fatalf("size = %v, want 10%%", p.SplitSize())
	}
	err := p.Resize(-1)
	var sizeErr *InvalidSizeError
	if !errors.As(err, &sizeErr) || sizeErr.Size != 9 {
		t.Fatalf("Resize(-1) = %v, want InvalidSizeError(9)", err)
	}
	if err.Error() != "invalid split size: 9" {
		t.Fatalf("error text = %q", err.Error())
	}
}

func TestPartitionCompleteness(t *testing.T) {
	for _, dir := range []Direction{Horizontal, Vertical} {
		for extent := 2; extent <= 120; extent++ {
			for pct := 10; pct <= 90; pct += 7 {
				p := New(dir).WithSplitSize(Percentage(pct))
				area := image.Rect(3, 4, 3+extent, 4+extent)
				a, b := p.CalculatePanes(area)
				got, want := a.Dx()+b.Dx(), area.Dx()
				if dir == Vertical {
					got, want = a.Dy()+b.Dy(), area.Dy()
				}
				if d := want - got; d < 0 || d > 1 {
					t.Fatalf("%v extent=%d pct=%d: panes sum to %d, want %d", dir, extent, pct, got, want)
				}
			}
		}
	}
}

func TestCalculatePanesFixedAndMin(t *testing.T) {
	area := image.Rect(0, 0, 80, 24)

	a, b := New(Horizontal).WithSplitSize(Fixed(20)).CalculatePanes(area)
	if a != image.Rect(0, 0, 20, 24) || b != image.Rect(20, 0, 80, 24) {
		t.Fatalf("fixed: got %v %v", a, b)
	}

	a, b = New(Vertical).WithSplitSize(Min(6)).CalculatePanes(area)
	if a != image.Rect(0, 0, 80, 6) || b != image.Rect(0, 6, 80, 24) {
		t.Fatalf("min: got %v %v", a, b)
	}
}

func TestCalculatePanesZeroArea(t *testing.T) {
	for _, size := range []SplitSize{Percentage(50), Fixed(10), Min(3)} {
		a, b := New(Horizontal).WithSplitSize(size).CalculatePanes(image.Rectangle{})
		if !a.Empty() || !b.Empty() {
			t.Fatalf("%v: expected empty panes, got %v %v", size, a, b)
		}
	}
}
