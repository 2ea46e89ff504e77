package mathexpr_test

import (
	"math"
	"testing"

	"github.com/reagent/reagent/internal/mathexpr"
)

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+2", 4},
		{"50*0.1", 5},
		{"200 * 0.15", 30},
		{"5 + 3", 8},
		{"10 - 4 - 3", 3},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"100 / 4", 25},
		{"100 / 4 / 5", 5},
		{"-5 + 10", 5},
		{"-(2 + 3)", -5},
		{"87.50 * 0.15", 13.125},
		{"1 + 2 * (3 - 1) / 4", 2},
		{"+3", 3},
		{".5 * 2", 1},
	}
	for _, tt := range tests {
		got, err := mathexpr.Eval(tt.expr)
		if err != nil {
			t.Errorf("Eval(%q): %v", tt.expr, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Eval(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	exprs := []string{
		"",
		"1 / 0",
		"2 +",
		"(1 + 2",
		"1 + abc",
		"import os",
		"1..2",
		"2 ** 3",
	}
	for _, expr := range exprs {
		if _, err := mathexpr.Eval(expr); err == nil {
			t.Errorf("Eval(%q) should fail", expr)
		}
	}
}
