package domain

// Typed statuses returned by the remote check-in client. The client maps
// every HTTP-level failure to a transport status; callers never see raw
// markup or transport errors as Go errors.

type VerifyStatus string

const (
	VerifyValid          VerifyStatus = "valid"
	VerifyInvalid        VerifyStatus = "invalid"
	VerifyTransportError VerifyStatus = "transport_error"
)

type SessionCheck struct {
	Status VerifyStatus
	Detail string
}

type ListStatus string

const (
	ListFound          ListStatus = "found"
	ListEmpty          ListStatus = "empty"
	ListSessionInvalid ListStatus = "session_invalid"
	ListTransportError ListStatus = "transport_error"
)

type TaskListing struct {
	Status  ListStatus
	TaskIDs []string
	Detail  string
}

type SubmitStatus string

const (
	SubmitSuccess        SubmitStatus = "success"
	SubmitAlreadySigned  SubmitStatus = "already_signed"
	SubmitRejected       SubmitStatus = "rejected"
	SubmitUnconfirmed    SubmitStatus = "unconfirmed"
	SubmitTransportError SubmitStatus = "transport_error"
)

type SubmitResult struct {
	Status  SubmitStatus
	Message string
}

// Profile is the account identity and class list scraped from the student
// home page, used by session verification.
type Profile struct {
	Name    string
	Classes []ClassInfo
}

type ClassInfo struct {
	ID   string
	Name string
}
