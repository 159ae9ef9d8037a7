package feed

import "fmt"

// FetchError reports a transport failure or a non-2xx response while
// retrieving a feed document. The load is abandoned on the first failure;
// there is no retry.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("feed: fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("feed: fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not valid structured data.
type DecodeError struct {
	Location string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("feed: decode %s: %v", e.Location, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
