package http

// Handler processes the request by populating the response. At least the status code
// and the Content-Type header must be set; the rest is defaulted. Neither object may
// be retained after the handler returns.
type Handler func(request *Request, response *Response)
