package server

type state uint8

const (
	eAwaitLine state = iota
	eAwaitHeaders
	eAwaitBody
	eDispatch
)

func (s state) String() string {
	switch s {
	case eAwaitLine:
		return "await-line"
	case eAwaitHeaders:
		return "await-headers"
	case eAwaitBody:
		return "await-body"
	case eDispatch:
		return "dispatch"
	default:
		return "unknown"
	}
}
