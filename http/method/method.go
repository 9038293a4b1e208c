package method

import "github.com/indigo-web/utils/strcomp"

//go:generate stringer -type=Method
type Method uint8

const (
	Unknown Method = iota
	GET
	POST
)

// Parse recognizes a method token regardless of its case. Anything except GET and POST
// results in Unknown.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if strcomp.EqualFold(str, "GET") {
			return GET
		}
	case 4:
		if strcomp.EqualFold(str, "POST") {
			return POST
		}
	}

	return Unknown
}
