// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

// Scan is the result of scanning a file for its copyright header.
type Scan struct {
	// Style is the comment style of the file.
	Style Style
	// Found reports whether a copyright line was found in the header.
	Found bool
	// StartYear is the first year of the copyright line, if found.
	StartYear string
	// Header holds the lines of the original header, including its
	// terminator.
	Header []string
	// Body holds the lines that follow the header.
	Body []string
}

type scanState int

const (
	inHeader scanState = iota
	inHeaderTrailingBlank
	inBody
)

// ScanLines walks lines, which must not include an interpreter line, and
// separates the copyright header from the rest of the file.
//
// A header that ends without a copyright line is not considered a copyright
// header and stays in the body. A header that is never terminated swallows the
// whole file.
func ScanLines(lines []string, hasInterpreter bool) Scan {
	var first string
	if len(lines) > 0 {
		first = lines[0]
	}
	style, hasHeader := Detect(first, hasInterpreter)
	sc := Scan{Style: style}

	state := inHeader
	if !hasHeader {
		state = inBody
	}

	// Lines of the header seen before a copyright line. They move to the body
	// if the header turns out to have no copyright line.
	var pending []string

	for _, line := range lines {
		switch state {
		case inHeader:
			if style.isCode(line) {
				// Script header cut short by code: the code is body.
				if !sc.Found {
					sc.Body = append(sc.Body, pending...)
					sc.Header = nil
				}
				sc.Body = append(sc.Body, line)
				state = inBody
				continue
			}
			sc.Header = append(sc.Header, line)
			if style.IsEnd(line) {
				if !sc.Found {
					sc.Body = append(sc.Body, pending...)
					sc.Body = append(sc.Body, line)
					sc.Header = nil
					state = inBody
					continue
				}
				state = inHeaderTrailingBlank
				continue
			}
			if year, ok := style.copyrightYear(line); ok && !sc.Found {
				sc.StartYear = year
				sc.Found = true
				pending = nil
				continue
			}
			if !sc.Found {
				pending = append(pending, line)
			}
		case inHeaderTrailingBlank:
			if isBlank(line) {
				continue
			}
			state = inBody
			sc.Body = append(sc.Body, line)
		case inBody:
			sc.Body = append(sc.Body, line)
		}
	}

	return sc
}

func isBlank(line string) bool {
	return StyleScript.IsEnd(line)
}
