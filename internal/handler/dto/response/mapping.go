package response

import (
	"car-rental-core/internal/domain/pricing"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money leaves the API as a fixed two-place string.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(pricing.Places), nil
			},
		},
	},
}

func copyView(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOptions)
}
