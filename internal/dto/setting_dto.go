package dto

type SetSettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

type SettingResponse struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}
