package options

import (
	"github.com/paluigi/csv2excel/internal/types"
)

// Resolve builds the conversion parameters for a mode and a selection of
// labels. Every label must match an entry of its table; an unmatched label
// yields a *types.ConfigurationError naming the category and the label.
func (r *Registry) Resolve(modeLabel string, sel types.Selection) (types.Parameters, error) {
	mode, ok := r.Mode(modeLabel)
	if !ok {
		return types.Parameters{}, &types.ConfigurationError{Category: CategoryMode, Label: modeLabel}
	}

	params := types.Parameters{
		OriginExt: mode.Origin(),
		TargetExt: mode.Target(),
	}

	symbols := make(map[types.Category]string, len(types.Categories))
	for _, category := range types.Categories {
		label := sel.Get(category)
		opt, ok := r.Option(category, label)
		if !ok {
			return types.Parameters{}, &types.ConfigurationError{Category: string(category), Label: label}
		}
		symbols[category] = opt.Symbol
	}

	params.Separator = symbols[types.CategorySeparator]
	params.Decimal = symbols[types.CategoryDecimal]
	params.QuoteChar = symbols[types.CategoryQuoteChar]
	params.Encoding = symbols[types.CategoryEncoding]

	return params, nil
}
