package flexrect

import "testing"

func TestDim(t *testing.T) {
	var zero Dim
	if zero.IsSet() {
		t.Error("zero Dim should be unset")
	}
	if got := zero.Or(7); got != 7 {
		t.Errorf("unset.Or(7) = %v, want 7", got)
	}
	if got := Px(3).Or(7); got != 3 {
		t.Errorf("Px(3).Or(7) = %v, want 3", got)
	}
	if v, ok := Px(0).Get(); !ok || v != 0 {
		t.Errorf("Px(0).Get() = (%v, %v), want (0, true)", v, ok)
	}
	if got := Unset().String(); got != "unset" {
		t.Errorf("Unset().String() = %q", got)
	}
	if got := Px(12.5).String(); got != "12.5" {
		t.Errorf("Px(12.5).String() = %q", got)
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{"row", Row, false},
		{"column", Column, false},
		{"col", Column, false},
		{"", Row, false},
		{"diagonal", Row, true},
	}
	for _, tt := range tests {
		got, err := ParseAxis(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseAxis(%q) = (%v, %v), want (%v, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
	if Row.String() != "row" || Column.String() != "column" {
		t.Error("Axis.String mismatch")
	}
}

func TestConstraintsSize(t *testing.T) {
	tests := []struct {
		name         string
		c            Constraints[struct{}]
		inW, inH     float64
		wantW, wantH float64
	}{
		{"unconstrained", Constraints[struct{}]{}, 100, 50, 100, 50},
		{"exact width", Constraints[struct{}]{Width: Px(30)}, 100, 50, 30, 50},
		{"exact height", Constraints[struct{}]{Height: Px(10)}, 100, 50, 100, 10},
		{"max clamps down", Constraints[struct{}]{MaxWidth: Px(60)}, 100, 50, 60, 50},
		{"max ignored when smaller", Constraints[struct{}]{MaxWidth: Px(600)}, 100, 50, 100, 50},
		{"min clamps up", Constraints[struct{}]{MinHeight: Px(80)}, 100, 50, 100, 80},
		{"max clamps exact", Constraints[struct{}]{Width: Px(300), MaxWidth: Px(200)}, 100, 50, 200, 50},
		{"min after max wins", Constraints[struct{}]{MaxWidth: Px(20), MinWidth: Px(40)}, 100, 50, 40, 50},
		{"negative input kept", Constraints[struct{}]{}, -5, 0, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := tt.c.size(tt.inW, tt.inH)
			if gotW != tt.wantW || gotH != tt.wantH {
				t.Errorf("size(%v, %v) = (%v, %v), want (%v, %v)", tt.inW, tt.inH, gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSized(t *testing.T) {
	c := Sized(800, 600, Column, "root")
	if w, ok := c.Width.Get(); !ok || w != 800 {
		t.Errorf("Width = (%v, %v), want (800, true)", w, ok)
	}
	if h, ok := c.Height.Get(); !ok || h != 600 {
		t.Errorf("Height = (%v, %v), want (600, true)", h, ok)
	}
	if c.Axis != Column || c.Payload != "root" {
		t.Errorf("Sized() = %+v", c)
	}
	e := Empty(Row, 1)
	if e.Width.IsSet() || e.MaxHeight.IsSet() || e.Payload != 1 {
		t.Errorf("Empty() = %+v", e)
	}
}
