package consts

const (
	ParamAddress = "address"
)
