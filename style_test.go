package prettui

import "testing"

func TestStyleBuilders(t *testing.T) {
	s := NewStyle().Foreground(Red).Background(Black).Bold().Underline()

	if !s.Fg.Equal(Red) {
		t.Errorf("Fg = %+v, want Red", s.Fg)
	}
	if !s.Bg.Equal(Black) {
		t.Errorf("Bg = %+v, want Black", s.Bg)
	}
	for _, a := range []Attr{AttrBold, AttrUnderline} {
		if !s.HasAttr(a) {
			t.Errorf("HasAttr(%d) = false", a)
		}
	}
	for _, a := range []Attr{AttrDim, AttrItalic, AttrReverse} {
		if s.HasAttr(a) {
			t.Errorf("HasAttr(%d) = true for unset attribute", a)
		}
	}
}

func TestStyleBuildersDoNotMutate(t *testing.T) {
	base := NewStyle().Foreground(Green)
	derived := base.Bold().Background(Black)

	if base.HasAttr(AttrBold) {
		t.Error("Bold() mutated the receiver")
	}
	if !base.Bg.IsDefault() {
		t.Error("Background() mutated the receiver")
	}
	if !derived.HasAttr(AttrBold) || derived.Bg.IsDefault() {
		t.Errorf("derived style missing changes: %+v", derived)
	}
}

func TestStyleEqual(t *testing.T) {
	a := NewStyle().Foreground(Cyan).Dim()
	b := NewStyle().Foreground(Cyan).Dim()
	if !a.Equal(b) {
		t.Error("identical styles not equal")
	}
	if a.Equal(b.Italic()) {
		t.Error("styles with different attributes reported equal")
	}
	if a.Equal(NewStyle().Foreground(Blue).Dim()) {
		t.Error("styles with different colors reported equal")
	}
}
