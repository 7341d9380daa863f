package entity

import "errors"

// Submission wizard states. Contact details must pass before payment is
// considered, payment must pass before the flow is submitted.
const (
	FlowDetails   = "details"
	FlowPayment   = "payment"
	FlowSubmitted = "submitted"
)

var (
	ErrMissingContact      = errors.New("owner name and phone are required")
	ErrAmountMismatch      = errors.New("declared amount does not match booking total")
	ErrMissingSlip         = errors.New("payment slip is required")
	ErrMismatchUnconfirmed = errors.New("slip amount mismatch must be confirmed")
	ErrFlowState           = errors.New("submission step out of order")
)

// SubmissionFlow reproduces the two-step booking wizard as a state
// machine over request data.
type SubmissionFlow struct {
	state string
}

func NewSubmissionFlow() *SubmissionFlow {
	return &SubmissionFlow{state: FlowDetails}
}

func (f *SubmissionFlow) State() string {
	return f.state
}

// SubmitDetails gates the details -> payment transition on a non-empty
// owner name and phone.
func (f *SubmissionFlow) SubmitDetails(ownerName, phone string) error {
	if f.state != FlowDetails {
		return ErrFlowState
	}
	if ownerName == "" || phone == "" {
		return ErrMissingContact
	}
	f.state = FlowPayment
	return nil
}

// SubmitPayment gates final submission: the declared amount must equal
// the computed total, a slip must be attached, and a reported slip-text
// mismatch must be explicitly confirmed by the user.
func (f *SubmissionFlow) SubmitPayment(declared, total float64, slip string, mismatchReported, mismatchConfirmed bool) error {
	if f.state != FlowPayment {
		return ErrFlowState
	}
	if declared != total {
		return ErrAmountMismatch
	}
	if slip == "" {
		return ErrMissingSlip
	}
	if mismatchReported && !mismatchConfirmed {
		return ErrMismatchUnconfirmed
	}
	f.state = FlowSubmitted
	return nil
}
