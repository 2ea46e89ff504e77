package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reagent/reagent/internal/service"
)

// CurrencyTool converts an amount between currency codes using ECB rates.
func CurrencyTool(svc *service.FrankfurterService) Tool {
	return Tool{
		Name:        "get_currency_exchange",
		Description: "Converts currency amounts",
		Usage:       `get_currency_exchange("USD", "EUR", 200)`,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			from, err := stringArg(args, "from_currency")
			if err != nil {
				return "", err
			}
			to, err := stringArg(args, "to_currency")
			if err != nil {
				return "", err
			}
			amount, err := optNumberArg(args, "amount", 1.0)
			if err != nil {
				return "", err
			}
			if amount <= 0 {
				return "", argErrorf("argument 'amount' must be positive, got %s", formatNumber(amount))
			}

			converted, err := svc.Convert(ctx, from, to, amount)
			if errors.Is(err, service.ErrRateNotFound) {
				return fmt.Sprintf("Currency error: Could not find exchange rate for %s to %s", from, to), nil
			}
			if err != nil {
				return fmt.Sprintf("Currency API error: %v", err), nil
			}

			fromU := strings.ToUpper(from)
			toU := strings.ToUpper(to)
			rate := converted / amount
			return fmt.Sprintf("Exchange rate: 1 %s = %.4f %s. %s %s = %.2f %s",
				fromU, rate, toU, formatNumber(amount), fromU, converted, toU), nil
		},
	}
}
