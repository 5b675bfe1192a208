package domain

type CtxKey string

const (
	KeySubject   CtxKey = "Subject"
	KeyRequestID CtxKey = "RequestID"
)
