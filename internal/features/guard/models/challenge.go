package models

import (
	"strconv"
	"strings"
)

const (
	// VerifyPrefix marks control payloads produced by the membership challenge.
	VerifyPrefix = "verify_user"
	// PayloadSeparator splits the prefix from the encoded user id.
	PayloadSeparator = ":"
)

// ChallengeToken binds a challenge control to the user it was issued for.
type ChallengeToken struct {
	UserID int64
}

// NewChallengeToken creates a token for the given user.
func NewChallengeToken(userID int64) ChallengeToken {
	return ChallengeToken{UserID: userID}
}

// String encodes the token as a control payload, e.g. "verify_user:555".
func (t ChallengeToken) String() string {
	return VerifyPrefix + PayloadSeparator + strconv.FormatInt(t.UserID, 10)
}

// PayloadKind tells which control produced a payload.
type PayloadKind int

const (
	PayloadUnrecognized PayloadKind = iota
	PayloadVerify
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadVerify:
		return "verify"
	default:
		return "unrecognized"
	}
}

// ControlPayload is a parsed control payload. TargetID is set only for PayloadVerify.
type ControlPayload struct {
	Kind     PayloadKind
	TargetID int64
}

// ParsePayload decodes raw control data. Anything that is not a well-formed
// challenge token yields PayloadUnrecognized.
func ParsePayload(data string) ControlPayload {
	if !strings.HasPrefix(data, VerifyPrefix+PayloadSeparator) {
		return ControlPayload{Kind: PayloadUnrecognized}
	}

	parts := strings.Split(data, PayloadSeparator)
	if len(parts) != 2 {
		return ControlPayload{Kind: PayloadUnrecognized}
	}

	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ControlPayload{Kind: PayloadUnrecognized}
	}

	return ControlPayload{Kind: PayloadVerify, TargetID: userID}
}

// Token returns the challenge token carried by a verify payload.
func (p ControlPayload) Token() (ChallengeToken, bool) {
	if p.Kind != PayloadVerify {
		return ChallengeToken{}, false
	}
	return NewChallengeToken(p.TargetID), true
}
