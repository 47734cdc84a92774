package carousel

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		candidate int
		length    int
		want      int
	}{
		{"in range", 2, 4, 2},
		{"zero", 0, 4, 0},
		{"one past end", 4, 4, 0},
		{"minus one", -1, 4, 3},
		{"many wraps forward", 4*1000 + 3, 4, 3},
		{"many wraps backward", -4*1000 - 1, 4, 3},
		{"single item", -7, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.candidate, tt.length)
			if err != nil {
				t.Fatalf("Normalize(%d, %d) error = %v", tt.candidate, tt.length, err)
			}
			if got != tt.want {
				t.Fatalf("Normalize(%d, %d) = %d, want %d", tt.candidate, tt.length, got, tt.want)
			}
		})
	}
}

func TestNormalize_RangeAndPeriodicity(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for c := -50; c <= 50; c++ {
			got, err := Normalize(c, n)
			if err != nil {
				t.Fatalf("Normalize(%d, %d) error = %v", c, n, err)
			}
			if got < 0 || got >= n {
				t.Fatalf("Normalize(%d, %d) = %d, out of [0, %d)", c, n, got, n)
			}
			for _, k := range []int{-3, -1, 1, 7} {
				shifted, _ := Normalize(c+k*n, n)
				if shifted != got {
					t.Fatalf("Normalize(%d+%d*%d, %d) = %d, want %d", c, k, n, n, shifted, got)
				}
			}
		}
	}
}

func TestNormalize_EmptyLengthRejected(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := Normalize(5, n); !errors.Is(err, ErrEmptyData) {
			t.Fatalf("Normalize(5, %d) error = %v, want ErrEmptyData", n, err)
		}
	}
}

func TestMustNormalizePanicsOnEmpty(t *testing.T) {
	if got := mustNormalize(-1, 3); got != 2 {
		t.Fatalf("mustNormalize(-1, 3) = %d, want 2", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("mustNormalize(1, 0) did not panic")
		}
	}()
	mustNormalize(1, 0)
}
