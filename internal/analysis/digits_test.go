package analysis

import (
	"testing"

	"github.com/nao1215/numanalyzer/internal/model"
)

func TestIsPalindrome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input model.Number
		want  bool
	}{
		{name: "121", input: model.Int(121), want: true},
		{name: "123", input: model.Int(123), want: false},
		{name: "single digit", input: model.Int(7), want: true},
		{name: "zero", input: model.Int(0), want: true},
		{name: "even length", input: model.Int(1221), want: true},
		{name: "sign is ignored", input: model.Int(-121), want: true},
		{name: "trailing zero", input: model.Int(10), want: false},
		{name: "real uses its integer part", input: model.Classify(131.75), want: true},
		{name: "real integer part that is not a palindrome", input: model.Classify(12.21), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsPalindrome(tt.input); got != tt.want {
				t.Errorf("IsPalindrome(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDigitalRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input model.Number
		want  int
	}{
		// 9+8+7+5 = 29, 2+9 = 11, 1+1 = 2
		{name: "9875 reduces in three steps", input: model.Int(9875), want: 2},
		{name: "zero", input: model.Int(0), want: 0},
		{name: "single digit", input: model.Int(7), want: 7},
		{name: "multiple of nine", input: model.Int(999), want: 9},
		{name: "negative", input: model.Int(-38), want: 2},
		{name: "real uses its integer part", input: model.Classify(12.9), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DigitalRoot(tt.input); got != tt.want {
				t.Errorf("DigitalRoot(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestDigitalRootCongruence checks the closed form 1 + (n-1) mod 9.
func TestDigitalRootCongruence(t *testing.T) {
	t.Parallel()

	for n := int64(1); n <= 100_000; n++ {
		want := int(1 + (n-1)%9)
		if got := DigitalRoot(model.Int(n)); got != want {
			t.Fatalf("DigitalRoot(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestDigitSum(t *testing.T) {
	t.Parallel()

	if got := DigitSum(model.Int(9875)); got != 29 {
		t.Errorf("DigitSum(9875) = %d, want 29", got)
	}
	if got := DigitSum(model.Int(-405)); got != 9 {
		t.Errorf("DigitSum(-405) = %d, want 9", got)
	}
}

func TestReverseDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  model.Number
		want   uint64
		wantOK bool
	}{
		{name: "trailing zero is dropped", input: model.Int(120), want: 21, wantOK: true},
		{name: "single digit", input: model.Int(5), want: 5, wantOK: true},
		{name: "zero", input: model.Int(0), want: 0, wantOK: true},
		{name: "sign is dropped", input: model.Int(-123), want: 321, wantOK: true},
		{name: "MinInt64 magnitude", input: model.Int(-9223372036854775808), want: 8085774586302733229, wantOK: true},
		{name: "real uses its integer part", input: model.Classify(45.6), want: 54, wantOK: true},
		{name: "huge real with trailing zeros", input: model.Classify(1e20), want: 1, wantOK: true},
		// 2^70 = 1180591620717411303424 reverses to 22 significant digits.
		{name: "reversal beyond uint64", input: model.Classify(0x1p70), want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ReverseDigits(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ReverseDigits(%v) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
