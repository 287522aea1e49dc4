package core

// Outcome classifies the overall result of a batch send.
type Outcome int

const (
	// OutcomeAccepted means the provider accepted every message.
	OutcomeAccepted Outcome = iota
	// OutcomePartiallyFailed means the provider accepted some messages and
	// rejected others. Partial failure is data, not an error.
	OutcomePartiallyFailed
	// OutcomeTotallyFailed means the provider rejected every message.
	OutcomeTotallyFailed
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomePartiallyFailed:
		return "partially_failed"
	case OutcomeTotallyFailed:
		return "totally_failed"
	default:
		return "unknown"
	}
}

// Classify determines the overall outcome of a 2xx batch response.
//
// A batch counts as totally failed only when the failed list is non-empty
// AND its length equals the reported total. Equality, not mere non-emptiness,
// is what separates "the whole batch bounced" from "some of N were rejected,
// the rest accepted" — so a single-message batch surfaces a rejection as
// total failure while larger batches keep partial information.
func Classify(res *BatchSendResult) Outcome {
	failed := len(res.FailedMessages)
	switch {
	case failed == 0:
		return OutcomeAccepted
	case failed == res.GroupInfo.Count.Total:
		return OutcomeTotallyFailed
	default:
		return OutcomePartiallyFailed
	}
}

// Reconcile turns a 2xx batch response into a result or an error.
//
// A nil response despite a 2xx status is a protocol violation by the
// provider and is reported as ErrEmptyResponse. A totally failed batch is
// reported as *MessageNotReceivedError carrying the per-message reasons.
// A partially failed batch is not an error: the result comes back with its
// failure list intact for the caller to inspect.
func Reconcile(op string, res *BatchSendResult) (*BatchSendResult, error) {
	if res == nil {
		return nil, &APIError{
			Op:      op,
			Message: "provider returned an empty body",
			Err:     ErrEmptyResponse,
		}
	}
	if Classify(res) == OutcomeTotallyFailed {
		return nil, &MessageNotReceivedError{Failed: res.FailedMessages}
	}
	return res, nil
}
