package domain

// CallContext describes the identity context of an incoming operation. It
// captures who is calling and the value attached to the call (settled by
// the upstream payment layer before the request reaches this service). The
// HTTP layer constructs this struct from the authenticated request and
// passes it into the usecase.
type CallContext struct {
	Caller string
	Value  int64
}
