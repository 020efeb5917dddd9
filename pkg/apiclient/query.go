package apiclient

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// encodeQuery turns params into query values. Supported params: nil,
// url.Values, map[string]string, map[string]any and structs (or pointers to
// structs) tagged the go-querystring way, e.g. `url:"name,omitempty"`.
func encodeQuery(params any) (url.Values, error) {
	switch p := params.(type) {
	case nil:
		return nil, nil
	case url.Values:
		return p, nil
	case map[string]string:
		q := make(url.Values, len(p))
		for k, v := range p {
			q.Set(k, v)
		}
		return q, nil
	case map[string]any:
		q := make(url.Values, len(p))
		for k, v := range p {
			q.Set(k, fmt.Sprint(v))
		}
		return q, nil
	}

	q, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeRequest, err)
	}
	return q, nil
}
