package types

import "testing"

func TestPrimitiveEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b SemType
		want bool
	}{
		{"same primitive", NewPrimitive(TYPE_I32), Int, true},
		{"different primitives", NewPrimitive(TYPE_I64), Int, false},
		{"both nil", nil, nil, true},
		{"one nil", Int, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNameAndSize(t *testing.T) {
	if Name(Int) != "i32" {
		t.Errorf("Name(Int) = %q", Name(Int))
	}
	if Name(nil) != "unknown" {
		t.Errorf("Name(nil) = %q", Name(nil))
	}
	if Int.Size() != 4 {
		t.Errorf("Int.Size() = %d", Int.Size())
	}
	if NewPrimitive(TYPE_UNKNOWN).Size() != -1 {
		t.Error("expected unknown size -1")
	}
	if !IsInt(NewPrimitive(TYPE_I32)) || IsInt(NewPrimitive(TYPE_VOID)) {
		t.Error("IsInt misclassified a primitive")
	}
}
