package detect

import (
	"strconv"
	"strings"

	"indentdetect/pkg/indent"

	"github.com/docker/docker/errdefs"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	errInvalidTabWidth = errors.New("Invalid default tab width")
	errZeroTabWidth    = errors.New("Default tab width can't be zero")
)

// detectOptions are the positional arguments of the detect command.
type detectOptions struct {
	File            string      `validate:"required"`
	Format          string      `validate:"oneof=generic vim"`
	DefaultTabWidth uint32      `validate:"gt=0"`
	Mode            indent.Mode `validate:"-"`
}

// parseOptions builds detectOptions from FILE FORMAT DEFTABWIDTH and
// validates them. The output format is checked before the tab width.
func parseOptions(args []string, v *validator.Validate) (detectOptions, error) {
	opts := detectOptions{
		File:   args[0],
		Format: args[1],
	}
	width, parseErr := parseTabWidth(args[2])
	opts.DefaultTabWidth = width

	var failed map[string]bool
	if err := v.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return detectOptions{}, err
		}
		failed = make(map[string]bool, len(verrs))
		for _, fe := range verrs {
			failed[fe.StructField()] = true
		}
	}

	switch {
	case failed["File"]:
		return detectOptions{}, errdefs.InvalidParameter(errors.New("FILE must not be empty"))
	case failed["Format"]:
		return detectOptions{}, errdefs.InvalidParameter(indent.ErrInvalidMode)
	case parseErr != nil:
		return detectOptions{}, errdefs.InvalidParameter(errInvalidTabWidth)
	case failed["DefaultTabWidth"]:
		return detectOptions{}, errdefs.InvalidParameter(errZeroTabWidth)
	}

	mode, err := indent.ParseMode(opts.Format)
	if err != nil {
		return detectOptions{}, errdefs.InvalidParameter(err)
	}
	opts.Mode = mode
	return opts, nil
}

// parseTabWidth accepts an unsigned 32-bit decimal with an optional
// leading '+'.
func parseTabWidth(s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
