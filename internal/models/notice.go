package models

// NoticeKind classifies a user-visible notice
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// String returns the kind name
func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a transient message surfaced to the user, such as an upload result
type Notice struct {
	Kind NoticeKind
	Text string
}
