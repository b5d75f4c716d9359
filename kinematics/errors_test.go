package kinematics

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func errorsAs(err error, target interface{}) bool {
	return errors.As(err, target)
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	err := errors.Wrap(NewInvalidIndexError(3, 2), "setting joint")
	test.That(t, IsInvalidIndexError(err), test.ShouldBeTrue)
	test.That(t, IsUnsupportedChainLengthError(err), test.ShouldBeFalse)

	var idxErr *InvalidIndexError
	test.That(t, errors.As(err, &idxErr), test.ShouldBeTrue)
	test.That(t, idxErr.Index, test.ShouldEqual, 3)
	test.That(t, idxErr.Count, test.ShouldEqual, 2)

	err = errors.Wrapf(NewUnsupportedChainLengthError(3, 2), "solving for %v", "target")
	test.That(t, IsUnsupportedChainLengthError(err), test.ShouldBeTrue)
	test.That(t, IsInvalidIndexError(err), test.ShouldBeFalse)
	test.That(t, err.Error(), test.ShouldContainSubstring, "only for 2-link arms")

	test.That(t, NewInvalidSegmentError(-1, 0, "length must not be negative").Error(),
		test.ShouldContainSubstring, "length must not be negative")
}
