package cart

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      Candidate
		want    Item
		wantErr bool
	}{
		{
			name: "clean item",
			in:   Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 2, ImageRef: "ccna.jpg"},
			want: Item{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 2, ImageRef: "ccna.jpg"},
		},
		{
			name: "numeric id coerced to string",
			in:   Candidate{ID: 7, Name: "CCNA 200-301", UnitPrice: 299.99},
			want: Item{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 1},
		},
		{
			name: "float id from decoded payload",
			in:   Candidate{ID: float64(7), Name: "CCNA 200-301", UnitPrice: 299.99},
			want: Item{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 1},
		},
		{
			name: "price given as string",
			in:   Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: "299.99"},
			want: Item{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 1},
		},
		{
			name: "missing quantity defaults to 1",
			in:   Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99},
			want: Item{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 1},
		},
		{
			name: "whitespace trimmed",
			in:   Candidate{ID: "  7 ", Name: "  CCNA 200-301 ", UnitPrice: 299.99},
			want: Item{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 1},
		},
		{
			name: "json number fields",
			in:   Candidate{ID: json.Number("7"), Name: "CCNA 200-301", UnitPrice: json.Number("299.99"), Quantity: json.Number("3")},
			want: Item{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 3},
		},
		{name: "missing id", in: Candidate{Name: "CCNA 200-301", UnitPrice: 299.99}, wantErr: true},
		{name: "empty id", in: Candidate{ID: "  ", Name: "CCNA 200-301", UnitPrice: 299.99}, wantErr: true},
		{name: "missing name", in: Candidate{ID: "7", UnitPrice: 299.99}, wantErr: true},
		{name: "missing price", in: Candidate{ID: "7", Name: "CCNA 200-301"}, wantErr: true},
		{name: "non-numeric price", in: Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: "gratis"}, wantErr: true},
		{name: "negative price", in: Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: -1.0}, wantErr: true},
		{name: "zero quantity", in: Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 0}, wantErr: true},
		{name: "negative quantity", in: Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: -3}, wantErr: true},
		{name: "fractional quantity", in: Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 1.5}, wantErr: true},
		{name: "boolean id", in: Candidate{ID: true, Name: "CCNA 200-301", UnitPrice: 299.99}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_normalizeLenient(t *testing.T) {
	tests := []struct {
		name   string
		in     Candidate
		want   Item
		wantOK bool
	}{
		{
			name:   "clean item passes through",
			in:     Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 2},
			want:   Item{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 2},
			wantOK: true,
		},
		{
			name:   "corrupt price defaults to zero",
			in:     Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: "n/a"},
			want:   Item{ID: "7", Name: "CCNA 200-301", UnitPrice: 0, Quantity: 1},
			wantOK: true,
		},
		{
			name:   "corrupt quantity defaults to one",
			in:     Candidate{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: "muchos"},
			want:   Item{ID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 1},
			wantOK: true,
		},
		{
			name:   "missing id falls back to name",
			in:     Candidate{Name: "CCNA 200-301", UnitPrice: 299.99},
			want:   Item{ID: "CCNA 200-301", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 1},
			wantOK: true,
		},
		{name: "no identity at all", in: Candidate{UnitPrice: 299.99}, wantOK: false},
		{name: "blank name only", in: Candidate{Name: "   "}, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeLenient(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("normalizeLenient() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("normalizeLenient() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
