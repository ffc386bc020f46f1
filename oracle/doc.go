// Package oracle emulates queries to an independent noisy comparator.
//
// An Oracle holds a dataset privately and answers "is item i less than item
// j on dimension k?" with a fixed error probability p ∈ [0, 0.5). Every
// query is independent even for identical arguments — this independence is
// the statistical basis the amplify package's majority voting relies on.
//
// Once constructed, the dataset is unreachable from outside the Oracle: the
// only way to learn anything about the underlying values is through Less,
// which already folds in the error probability. No other path in the
// engine reads raw attribute values except through the Oracle.
//
// Options:
//
//	– WithSeed(seed): pins the RNG to a deterministic stream, for tests.
//	  Without it, New seeds from crypto/rand so two runs never collide.
//
// Errors (sentinel):
//
//	– ErrNilDataset          if the provided dataset is nil.
//	– ErrProbabilityRange    if p is outside [0, 0.5).
package oracle
