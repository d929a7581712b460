package models

type CreateStatsRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type VoteRequest struct {
	PostID   int64  `json:"post_id" validate:"required,gt=0"`
	VoteKind string `json:"vote_kind" validate:"required"`
}

type UploadRequest struct {
	ImageURL string `json:"image_url" validate:"required,max=512"`
}

type ClaimQuestRequest struct {
	QuestID int64 `json:"quest_id" validate:"required,gt=0"`
}

type PurchaseRequest struct {
	ItemID int64 `json:"item_id" validate:"required,gt=0"`
}
