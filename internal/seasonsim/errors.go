package seasonsim

import "errors"

// ErrVerification marks a served ranking that breaks an invariant the
// simulator can compute from the submitted season.
var ErrVerification = errors.New("ranking verification failed")
