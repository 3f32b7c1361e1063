// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/mel-lang/mel/internal/common/interface/cell"
	"github.com/mel-lang/mel/internal/common/interface/truth"
	"github.com/mel-lang/mel/internal/common/type/create"
	"github.com/mel-lang/mel/internal/common/validate"
)

func not(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return create.Bool(!truth.Value(v[0])), nil
}
