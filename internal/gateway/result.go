package gateway

// Product is one entry in a fetched product list. ID is absent for products
// the backend could not resolve.
type Product struct {
	ID   *int64 `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Identity carries the user's display name parts.
type Identity struct {
	Name    string `json:"name" yaml:"name"`
	Surname string `json:"surname" yaml:"surname"`
}

// Component configures the optional promo component on the screen.
type Component struct {
	Title   string `json:"title" yaml:"title"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// Response is the payload of a successful fetch.
type Response struct {
	ProductName *string    `json:"productName,omitempty" yaml:"productName,omitempty"`
	Products    []Product  `json:"products" yaml:"products"`
	Identity    *Identity  `json:"identity,omitempty" yaml:"identity,omitempty"`
	Component   *Component `json:"component,omitempty" yaml:"component,omitempty"`
}

// ProductIDs returns the ids of products that have one, in list order.
func (r *Response) ProductIDs() []int64 {
	if r == nil {
		return nil
	}
	ids := make([]int64, 0, len(r.Products))
	for _, p := range r.Products {
		if p.ID != nil {
			ids = append(ids, *p.ID)
		}
	}
	return ids
}

// FetchResult is the outcome of one fetch: either a Response or an error.
// The zero value is a failure with a nil error and should not be produced.
type FetchResult struct {
	resp *Response
	err  error
}

// Success wraps a fetched payload. A nil payload is treated as empty.
func Success(resp *Response) FetchResult {
	if resp == nil {
		resp = &Response{}
	}
	return FetchResult{resp: resp}
}

// Failure wraps a fetch error.
func Failure(err error) FetchResult {
	return FetchResult{err: err}
}

// OK reports whether the fetch succeeded.
func (r FetchResult) OK() bool {
	return r.resp != nil
}

// Response returns the payload, or nil for a failure.
func (r FetchResult) Response() *Response {
	return r.resp
}

// Err returns the failure error, or nil for a success.
func (r FetchResult) Err() error {
	return r.err
}
