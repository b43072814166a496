package consts

const (
	KeyRequestID = "requestID"
)
