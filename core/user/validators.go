package user

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jjyf27/redpro/core"
)

// password policy
var (
	pwdMinLen     = 8
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdMaxSim      = .7
	pwdAttrSimText = "password cannot be similar to your name or email"
)

// checkPasswordStrength applies the registration password policy: minimum
// length, not all digits, and not too similar to the user's own
// attributes (sequence-matcher ratio above pwdMaxSim fails).
func checkPasswordStrength(pwd string, attrs ...string) error {
	if len(pwd) < pwdMinLen {
		return passwordError(pwdMinLenText)
	}

	allNum := true
	for _, r := range pwd {
		if !unicode.IsDigit(r) {
			allNum = false
			break
		}
	}
	if allNum {
		return passwordError(pwdNotAllNumText)
	}

	lowerPwd := strings.ToLower(pwd)
	for _, attr := range attrs {
		attr = strings.ToLower(core.CleanString(attr))
		if attr == "" {
			continue
		}
		ratio := difflib.NewMatcher(strings.Split(lowerPwd, ""), strings.Split(attr, "")).QuickRatio()
		if ratio >= pwdMaxSim {
			return passwordError(pwdAttrSimText)
		}
	}
	return nil
}

func passwordError(text string) error {
	return core.NewValidationError(nil, core.FieldError{Field: "password", Error: text})
}
