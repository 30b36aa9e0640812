package alerts

import "fmt"

// InvalidInputError signals a malformed evaluation request, rejected before
// any store query is issued.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// DataAccessError wraps a store failure during an evaluation pass. The pass
// does not retry; the caller decides whether to run the whole pass again.
type DataAccessError struct {
	Op  string
	Err error
}

func (e DataAccessError) Error() string {
	return fmt.Sprintf("data access failed during %s: %v", e.Op, e.Err)
}

func (e DataAccessError) Unwrap() error {
	return e.Err
}
