package tools

import (
	"context"
	"fmt"

	"github.com/reagent/reagent/internal/mathexpr"
)

// CalculatorTool evaluates arithmetic expressions locally through a purpose-
// built parser. Nothing in the expression is ever executed as code.
func CalculatorTool() Tool {
	return Tool{
		Name:        "calculator",
		Description: "Performs arithmetic calculations and percentage operations",
		Usage:       `calculator("100 * 0.15") or calculator("50 + 25")`,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			expr, err := stringArg(args, "expression")
			if err != nil {
				return "", err
			}
			result, err := mathexpr.Eval(expr)
			if err != nil {
				return fmt.Sprintf("Calculator error: %v", err), nil
			}
			return fmt.Sprintf("Calculation result: %s = %s", expr, formatNumber(result)), nil
		},
	}
}
