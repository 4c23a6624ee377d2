package model

import (
	"encoding/json"
	"testing"
)

func TestReportHasSpecialProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		special []string
		want    bool
	}{
		{name: "placeholder only", special: []string{NoSpecialProperties}, want: false},
		{name: "single label", special: []string{LabelPrime}, want: true},
		{name: "several labels", special: []string{LabelArmstrong, LabelPalindrome}, want: true},
		{name: "empty list", special: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &Report{Special: tt.special}
			if got := r.HasSpecialProperties(); got != tt.want {
				t.Errorf("got %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestReportJSON(t *testing.T) {
	t.Parallel()

	t.Run("integer report", func(t *testing.T) {
		t.Parallel()
		r := &Report{
			Input: "-8",
			Kind:  KindInteger,
			Basic: PropertyReport{
				Number:     Int(-8),
				Parity:     ParityEven,
				Sign:       SignNegative,
				Square:     Int(64),
				Cube:       Int(-512),
				SquareRoot: Root{},
				Integer: &IntegerProperties{
					Factors:     []uint64{1, 2, 4, 8},
					FactorCount: 4,
					Reversed:    8,
					DigitSum:    8,
					DigitalRoot: 8,
				},
			},
			Special: []string{LabelPalindrome, LabelPerfectCube},
		}

		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded struct {
			Input string `json:"input"`
			Kind  string `json:"kind"`
			Basic struct {
				Number     int64  `json:"number"`
				Parity     string `json:"parity"`
				Sign       string `json:"sign"`
				Cube       int64  `json:"cube"`
				SquareRoot string `json:"square_root"`
				Integer    *struct {
					Factors     []uint64 `json:"factors"`
					FactorCount int      `json:"factor_count"`
				} `json:"integer"`
			} `json:"basic"`
			Special []string `json:"special"`
		}
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("failed to decode %s: %v", data, err)
		}

		if decoded.Kind != "integer" {
			t.Errorf("got kind %q, expected integer", decoded.Kind)
		}
		if decoded.Basic.Parity != "even" || decoded.Basic.Sign != "negative" {
			t.Errorf("unexpected parity/sign %q/%q", decoded.Basic.Parity, decoded.Basic.Sign)
		}
		if decoded.Basic.Cube != -512 {
			t.Errorf("got cube %d, expected -512", decoded.Basic.Cube)
		}
		if decoded.Basic.SquareRoot != "imaginary" {
			t.Errorf("got square root %q, expected imaginary", decoded.Basic.SquareRoot)
		}
		if decoded.Basic.Integer == nil || decoded.Basic.Integer.FactorCount != 4 {
			t.Errorf("expected integer section with 4 factors, got %s", data)
		}
		if len(decoded.Special) != 2 {
			t.Errorf("expected 2 special labels, got %v", decoded.Special)
		}
	})

	t.Run("real report omits the integer section", func(t *testing.T) {
		t.Parallel()
		r := &Report{
			Input: "2.5",
			Kind:  KindReal,
			Basic: PropertyReport{
				Number:     Classify(2.5),
				Parity:     ParityNotApplicable,
				Sign:       SignPositive,
				Square:     Classify(6.25),
				Cube:       Classify(15.625),
				SquareRoot: Root{Value: 1.5811388300841898, Real: true},
			},
			Special: []string{NoSpecialProperties},
		}

		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		basic, ok := decoded["basic"].(map[string]any)
		if !ok {
			t.Fatalf("expected basic object in %s", data)
		}
		if _, present := basic["integer"]; present {
			t.Errorf("expected no integer section, got %s", data)
		}
		if basic["parity"] != "not_applicable" {
			t.Errorf("got parity %v, expected not_applicable", basic["parity"])
		}
	})
}

func TestPropertyStrings(t *testing.T) {
	t.Parallel()

	if got := ParityOdd.String(); got != "Odd" {
		t.Errorf("got %q, expected Odd", got)
	}
	if got := ParityNotApplicable.String(); got != "Not applicable" {
		t.Errorf("got %q, expected Not applicable", got)
	}
	if got := SignZero.String(); got != "Zero" {
		t.Errorf("got %q, expected Zero", got)
	}
	if got := (Root{Value: 3, Real: true}).String(); got != "3" {
		t.Errorf("got %q, expected 3", got)
	}
	if got := (Root{}).String(); got != "Imaginary" {
		t.Errorf("got %q, expected Imaginary", got)
	}
}
