package api

import "io"

// Cap on how much of an error response body is kept for diagnostics.
const maxErrBody = 8 << 10

// readBody drains up to maxErrBody bytes for inclusion in a StatusError.
func readBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrBody))
	if err != nil {
		return ""
	}
	return string(b)
}

// is2xx reports whether code is in the success range. The service answers
// 200 on every operation, but anything in the 2xx range decodes rather than
// entering the failure taxonomy.
func is2xx(code int) bool { return code >= 200 && code < 300 }
