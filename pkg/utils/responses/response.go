package responses

import (
	"github.com/gin-gonic/gin"
)

type successResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type successWithDataResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type paginationMeta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

type successWithPaginationResponse struct {
	Status     int            `json:"status"`
	Message    string         `json:"message"`
	Data       interface{}    `json:"data"`
	Pagination paginationMeta `json:"pagination"`
}

type errorResponse struct {
	Status int      `json:"status"`
	Errors []string `json:"errors"`
	Client string   `json:"client,omitempty"`
}

func SuccessResponse(message string) successResponse {
	return successResponse{
		Status:  CodeSuccess,
		Message: message,
	}
}

func SuccessWithDataResponse(data interface{}, code int, message string) successWithDataResponse {
	return successWithDataResponse{
		Status:  code,
		Message: message,
		Data:    data,
	}
}

func SuccessWithDataResponsePagination(data interface{}, currentPage, pageSize, totalPages, totalItems int, hasNext, hasPrev bool, message string) successWithPaginationResponse {
	return successWithPaginationResponse{
		Status:  CodeSuccess,
		Message: message,
		Data:    data,
		Pagination: paginationMeta{
			CurrentPage: currentPage,
			PageSize:    pageSize,
			TotalPages:  totalPages,
			TotalItems:  totalItems,
			HasNextPage: hasNext,
			HasPrevPage: hasPrev,
		},
	}
}

func ErrorJSON(c *gin.Context, code int, errors []string, remoteAddr string) {
	c.IndentedJSON(code, errorResponse{
		Status: code,
		Errors: errors,
		Client: remoteAddr,
	})
}
