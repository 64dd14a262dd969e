package http

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

type chatResp struct {
	Reply string `json:"reply"`
}

// errorResp is the failure body for every error path.
type errorResp struct {
	Detail string `json:"detail"`
}
