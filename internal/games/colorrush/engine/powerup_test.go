package engine

import "testing"

func TestPowerUpForBySize(t *testing.T) {
	tests := []struct {
		size   int
		effect Effect
		ok     bool
	}{
		{3, EffectNone, false},
		{4, EffectLineClear, true},
		{5, EffectColorClear, true},
		{6, EffectAreaClear, true},
		{7, EffectAreaClear, true},
		{9, EffectAreaClear, true},
	}
	for _, tt := range tests {
		tile, ok := PowerUpFor(groupOfSize(tt.size))
		if ok != tt.ok {
			t.Errorf("size %d: expected ok=%v, got %v", tt.size, tt.ok, ok)
			continue
		}
		if ok && tile.Effect != tt.effect {
			t.Errorf("size %d: expected effect %v, got %v", tt.size, tt.effect, tile.Effect)
		}
	}
}

func TestPowerUpKeepsGroupKind(t *testing.T) {
	g := groupOfSize(5)
	g.Kind = KindBlue
	tile, ok := PowerUpFor(g)
	if !ok {
		t.Fatal("group of 5 should produce a power-up")
	}
	if tile.Kind != KindBlue {
		t.Errorf("power-up should keep the group kind, got %v", tile.Kind)
	}
	if !tile.Special() {
		t.Error("power-up tile should report Special()")
	}
}
