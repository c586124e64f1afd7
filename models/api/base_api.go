package apimodels

type Response struct {
	Status  string      `json:"status"`            //processing result fail/success
	Message string      `json:"message,omitempty"` //error message
	Data    interface{} `json:"data,omitempty"`    //response payload
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // rows per page
	Page  int `json:"page" query:"page"`   // page number (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// Scroller is the skip/limit style offered on plain listing endpoints.
type Scroller struct {
	Skip  int `json:"skip" query:"skip"`
	Limit int `json:"limit" query:"limit"`
}

func (r Scroller) GetWindow() (skip, limit int) {
	skip = r.Skip
	if skip < 0 {
		skip = 0
	}
	limit = r.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return skip, limit
}
