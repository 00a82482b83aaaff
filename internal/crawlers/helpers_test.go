package crawlers

import (
	"net/http"
)

// staticHeaders 固定头部提供者
type staticHeaders http.Header

func (h staticHeaders) GetHeaders() (http.Header, error) {
	return http.Header(h).Clone(), nil
}

// failingHeaders 总是返回错误的头部提供者
type failingHeaders struct{ err error }

func (h failingHeaders) GetHeaders() (http.Header, error) {
	return nil, h.err
}
