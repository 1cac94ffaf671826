package compileerr_test

import (
	"errors"
	"testing"

	"github.com/OpShin/pluthon-go/internal/compileerr"
)

func TestErrorMessage(t *testing.T) {
	err := compileerr.New(compileerr.NegativeConstantIndex, "index %d is negative", -3)
	want := "negative_constant_index: index -3 is negative"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsMatchesByCodeNotMessage(t *testing.T) {
	err := compileerr.New(compileerr.ZeroParamLambda, "some specific lambda, line whatever")
	if !errors.Is(err, compileerr.ErrZeroParamLambda) {
		t.Errorf("expected errors.Is to match on Code alone")
	}
	if errors.Is(err, compileerr.ErrEmptyFunctionalTuple) {
		t.Errorf("expected errors.Is to reject a different Code")
	}
}

func TestCodeStringNames(t *testing.T) {
	cases := map[compileerr.Code]string{
		compileerr.ZeroParamLambda:        "zero_param_lambda",
		compileerr.EmptyFunctionalTuple:   "empty_functional_tuple",
		compileerr.NegativeConstantIndex:  "negative_constant_index",
		compileerr.FixpointDidNotConverge: "fixpoint_did_not_converge",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("Code(%d).String() = %q, want %q", code, got, want)
		}
	}
}
