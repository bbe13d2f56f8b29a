package responses

import "errors"

var (
	CodeSuccess       = 200 // 200
	CodeSuccessCreate = 201 // 201

	CodeFailedServer       = 500 // 500
	CodeFailedUser         = 400 // 400
	CodeFailedValidation   = 422 // 422
	CodeFailedUnauthorized = 401 // 401
	CodeFailedNotFound     = 404 // 404
	CodeFailedUpstream     = 502 // 502
)

var (
	ErrNoData       = errors.New("no data found")
	ErrUnauthorized = errors.New("authorization required")
)
