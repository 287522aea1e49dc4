package core

import (
	"errors"
	"testing"
)

func batchResult(total int, failed ...FailedMessage) *BatchSendResult {
	return &BatchSendResult{
		GroupInfo:      GroupInfo{Count: Count{Total: total}},
		FailedMessages: failed,
	}
}

func rejected(to, code string) FailedMessage {
	return FailedMessage{To: to, ErrorCode: code, ErrorMessage: "rejected"}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		res  *BatchSendResult
		want Outcome
	}{
		{
			name: "all accepted",
			res:  batchResult(3),
			want: OutcomeAccepted,
		},
		{
			name: "one of three rejected",
			res:  batchResult(3, rejected("15551230001", "InvalidNumber")),
			want: OutcomePartiallyFailed,
		},
		{
			name: "single message rejected",
			res:  batchResult(1, rejected("15551230001", "InvalidNumber")),
			want: OutcomeTotallyFailed,
		},
		{
			name: "five of five rejected",
			res: batchResult(5,
				rejected("15551230001", "InvalidNumber"),
				rejected("15551230002", "InvalidNumber"),
				rejected("15551230003", "InvalidNumber"),
				rejected("15551230004", "InvalidNumber"),
				rejected("15551230005", "InvalidNumber"),
			),
			want: OutcomeTotallyFailed,
		},
		{
			name: "absent group info with empty failure list",
			res:  batchResult(0),
			want: OutcomeAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.res); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReconcilePartialFailureIsNotAnError(t *testing.T) {
	res := batchResult(3, rejected("15551230001", "InvalidNumber"))

	got, err := Reconcile(OpSendMany, res)
	if err != nil {
		t.Fatalf("Reconcile() error = %v, want nil", err)
	}
	if got != res {
		t.Errorf("Reconcile() should return the original result")
	}
	if len(got.FailedMessages) != 1 {
		t.Errorf("failure list length = %d, want 1", len(got.FailedMessages))
	}
}

func TestReconcileTotalFailure(t *testing.T) {
	res := batchResult(2,
		rejected("15551230001", "InvalidNumber"),
		rejected("15551230002", "BlockedNumber"),
	)

	_, err := Reconcile(OpSendMany, res)
	if err == nil {
		t.Fatal("Reconcile() error = nil, want total failure")
	}
	if !errors.Is(err, ErrMessageNotReceived) {
		t.Errorf("errors.Is(err, ErrMessageNotReceived) = false, err = %v", err)
	}

	var notReceived *MessageNotReceivedError
	if !errors.As(err, &notReceived) {
		t.Fatalf("errors.As(*MessageNotReceivedError) = false, err = %T", err)
	}
	if len(notReceived.Failed) != 2 {
		t.Errorf("Failed length = %d, want 2", len(notReceived.Failed))
	}
	if notReceived.Failed[1].ErrorCode != "BlockedNumber" {
		t.Errorf("Failed[1].ErrorCode = %q, want %q", notReceived.Failed[1].ErrorCode, "BlockedNumber")
	}
}

func TestReconcileNilResponse(t *testing.T) {
	_, err := Reconcile(OpSendMany, nil)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("errors.Is(err, ErrEmptyResponse) = false, err = %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("errors.As(*APIError) = false, err = %T", err)
	}
	if apiErr.Op != OpSendMany {
		t.Errorf("Op = %q, want %q", apiErr.Op, OpSendMany)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeAccepted, "accepted"},
		{OutcomePartiallyFailed, "partially_failed"},
		{OutcomeTotallyFailed, "totally_failed"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}
