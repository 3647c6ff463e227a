package response

import (
	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				id, ok := src.(uuid.UUID)
				if !ok {
					return nil, errs.New("expected uuid.UUID")
				}
				return id.String(), nil
			},
		},
	},
}

// fromView copies a read model into its response shape by field name.
func fromView[T any](view any) (*T, error) {
	dst := new(T)
	if err := copier.CopyWithOption(dst, view, viewCopyOption); err != nil {
		return nil, errs.Wrapf(err, "map %T", view)
	}
	return dst, nil
}

func copierCopySlice(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, viewCopyOption); err != nil {
		return errs.Wrapf(err, "map %T", src)
	}
	return nil
}

// Envelope wraps every successful JSON body.
type Envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}
