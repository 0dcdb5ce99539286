package domain

type ClassifyRequest struct {
	ImageRef string `json:"image_ref" validate:"required"`
}

type CompareRequest struct {
	BeforeRef string `json:"before_ref" validate:"required"`
	AfterRef  string `json:"after_ref" validate:"required"`
}

type CreateReportRequest struct {
	Location    Location `json:"location" validate:"required"`
	Category    string   `json:"category" validate:"required,category"`
	Severity    Severity `json:"severity" validate:"omitempty,oneof=Low Medium High"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	UserID      string   `json:"user_id" validate:"required"`
}

type ResolveReportRequest struct {
	WorkerID  string `json:"worker_id"`
	BeforeRef string `json:"before_ref" validate:"required"`
	AfterRef  string `json:"after_ref" validate:"required"`
}

type ListReportsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type ListReportsResponse struct {
	Reports []Report `json:"reports"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Total   int64    `json:"total"`
}

type CreateNGORequest struct {
	Name       string   `json:"name" validate:"required"`
	Categories []string `json:"categories" validate:"required,min=1,dive,category"`
}

type CreateWorkerRequest struct {
	Name     string `json:"name" validate:"required"`
	NGOID    string `json:"ngo_id" validate:"required"`
	FCMToken string `json:"fcm_token"`
}

type UpdateWorkerLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
}

type UpdateWorkerActiveRequest struct {
	IsActive bool `json:"is_active"`
}
