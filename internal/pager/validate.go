package pager

import (
	"net/http"
	"strconv"
	"strings"
)

// Param is a raw request parameter value. Present distinguishes "s=" from no s at all.
type Param struct {
	Value   string
	Present bool
}

// Redirect asks the caller to send the client to Location with StatusCode
// (301 or 307) and stop processing the request.
type Redirect struct {
	Location   string
	StatusCode int
}

// ValidateInput is everything Validate needs to judge the paging parameters.
type ValidateInput struct {
	Request     Request
	StartKey    string
	StopKey     string
	ArgSep      string
	Start       Param
	Stop        Param
	TotalPages  int
	PageSizeMax int
}

// Validate checks the raw page index and page size and returns the redirect
// that canonicalizes them, or nil when both are acceptable.
//
// For either parameter: a number past the allowed maximum is clamped with a
// 307; a negative number is made positive with a 301; anything else that is
// not a positive number is dropped with a 301. Redirects for the page size
// always drop the page index too, since it no longer points at the same rows.
// The page index is checked first.
func Validate(in ValidateInput) *Redirect {
	sep := in.ArgSep
	if sep == "" {
		sep = "&"
	}
	req := in.Request

	if v := in.Start; v.Present {
		switch {
		case isDigits(v.Value) && exceeds(v.Value, in.TotalPages):
			return &Redirect{
				Location:   queryPrefix(req, sep, in.StartKey) + in.StartKey + "=" + strconv.Itoa(in.TotalPages),
				StatusCode: http.StatusTemporaryRedirect,
			}
		case isNegative(v.Value):
			return &Redirect{
				Location:   queryPrefix(req, sep, in.StartKey) + in.StartKey + "=" + trimZeros(v.Value[1:]),
				StatusCode: http.StatusMovedPermanently,
			}
		case !isPositive(v.Value):
			return &Redirect{
				Location:   canonicalURL(req, sep, in.StartKey),
				StatusCode: http.StatusMovedPermanently,
			}
		}
	}

	if v := in.Stop; v.Present {
		switch {
		case isDigits(v.Value) && exceeds(v.Value, in.PageSizeMax):
			return &Redirect{
				Location:   queryPrefix(req, sep, in.StartKey, in.StopKey) + in.StopKey + "=" + strconv.Itoa(in.PageSizeMax),
				StatusCode: http.StatusTemporaryRedirect,
			}
		case isNegative(v.Value):
			return &Redirect{
				Location:   queryPrefix(req, sep, in.StartKey, in.StopKey) + in.StopKey + "=" + trimZeros(v.Value[1:]),
				StatusCode: http.StatusMovedPermanently,
			}
		case !isPositive(v.Value):
			return &Redirect{
				Location:   canonicalURL(req, sep, in.StartKey, in.StopKey),
				StatusCode: http.StatusMovedPermanently,
			}
		}
	}

	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func trimZeros(s string) string {
	return strings.TrimLeft(s, "0")
}

// isPositive reports whether s is all digits and not zero.
func isPositive(s string) bool {
	return isDigits(s) && trimZeros(s) != ""
}

// isNegative reports whether s is a minus sign followed by a non-zero number.
func isNegative(s string) bool {
	return strings.HasPrefix(s, "-") && isPositive(s[1:])
}

// exceeds reports whether the digit string s is larger than limit.
// Values too large for an int always exceed it.
func exceeds(s string, limit int) bool {
	t := trimZeros(s)
	if t == "" {
		return false
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return true
	}
	return n > limit
}
