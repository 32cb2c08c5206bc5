package context_test

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/db47h/numeric"
	"github.com/db47h/numeric/context"
)

// mean returns the arithmetic mean of the literals xs, truncated after ctx's
// precision. Parsing and division can fail, but errors are checked only once.
func mean(ctx *context.Context, xs ...string) (numeric.Number, error) {
	var sum numeric.Number
	for _, s := range xs {
		sum = ctx.Add(sum, ctx.Parse(s))
	}
	m := ctx.Quo(sum, numeric.Word(len(xs)))
	if err := ctx.Err(); err != nil {
		return numeric.Number{}, errors.Wrapf(err, "mean of %d values", len(xs))
	}
	return m, nil
}

// Example demonstrates various features of Contexts.
func Example() {
	ctx := context.New(2)
	m, err := mean(ctx, "1.5", "2.25", "3")
	fmt.Println(m.Text(), err)

	_, err = mean(ctx)
	fmt.Println(err)

	_, err = mean(ctx, "1", "2.x")
	fmt.Println(errors.Is(err, numeric.ErrInvalidDigit))

	// the error state was cleared by mean
	fmt.Println(ctx.Add(numeric.FromInt64(1), numeric.FromInt64(2)).Text())
	//
	// Output:
	// 2.25 <nil>
	// mean of 0 values: division by zero
	// true
	// 3
}
