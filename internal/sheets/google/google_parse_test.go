package google

import "testing"

func TestFindRowIndex(t *testing.T) {
	values := [][]interface{}{
		{"ID"},
		{"a1"},
		{},
		{" b2 "},
		{42},
	}

	tests := []struct {
		id   string
		want int
	}{
		{"ID", 0},
		{"a1", 1},
		{"b2", 3},
		{"42", 4},
		{"missing", -1},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := findRowIndex(values, tt.id); got != tt.want {
				t.Errorf("findRowIndex(%q) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestA1Range(t *testing.T) {
	tests := []struct {
		sheet, cells, want string
	}{
		{"Transactions", "A:A", "'Transactions'!A:A"},
		{"My Money", "A:I", "'My Money'!A:I"},
		{"Bob's", "A:A", "'Bob''s'!A:A"},
	}
	for _, tt := range tests {
		if got := a1Range(tt.sheet, tt.cells); got != tt.want {
			t.Errorf("a1Range(%q, %q) = %q, want %q", tt.sheet, tt.cells, got, tt.want)
		}
	}
}

func TestLastColumn(t *testing.T) {
	tests := map[int]string{1: "A", 9: "I", 26: "Z", 27: "AA", 28: "AB"}
	for n, want := range tests {
		if got := lastColumn(n); got != want {
			t.Errorf("lastColumn(%d) = %q, want %q", n, got, want)
		}
	}
}
