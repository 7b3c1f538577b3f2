package domain

type CreateSessionRequest struct {
	// SessionID is optional; when empty the server generates one.
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
}

type UpdateTitleRequest struct {
	Text   *string `json:"text"`
	Locked *bool   `json:"locked"`
}

type UpdateFeedbackRequest struct {
	Feedback string `json:"feedback"`
}

type AddSectionRequest struct {
	Group GroupName `json:"group" validate:"required,oneof=MainContent ContextualBorder SupplementaryContent"`
}

type InsertSectionRequest struct {
	Group GroupName `json:"group" validate:"required,oneof=MainContent ContextualBorder SupplementaryContent"`
	Index int       `json:"index"`
}

type MoveSectionRequest struct {
	Group GroupName `json:"group" validate:"required,oneof=MainContent ContextualBorder SupplementaryContent"`
	Index int       `json:"index"`
	Delta int       `json:"delta"`
}

type RelocateSectionRequest struct {
	From  GroupName `json:"from" validate:"required,oneof=MainContent ContextualBorder SupplementaryContent"`
	Index int       `json:"index"`
	To    GroupName `json:"to" validate:"required,oneof=MainContent ContextualBorder SupplementaryContent"`
}

type ChangeLevelRequest struct {
	Group     GroupName      `json:"group" validate:"required,oneof=MainContent ContextualBorder SupplementaryContent"`
	Index     int            `json:"index"`
	Direction LevelDirection `json:"direction" validate:"required,oneof=raise lower reset"`
}

type ReorderGroupRequest struct {
	Order []string `json:"order" validate:"required"`
}

type UpdateSectionRequest struct {
	HeadingName       *string       `json:"heading_name"`
	Description       *string       `json:"description"`
	HeadingLevel      *HeadingLevel `json:"heading_level" validate:"omitempty,oneof=H2 H3 H4 H5 H6"`
	AnswerType        *AnswerType   `json:"answer_type" validate:"omitempty,oneof=Auto EDA DDA L+LD S+L+LD EOE"`
	AnswerLength      *AnswerLength `json:"answer_length" validate:"omitempty,oneof=Small Medium Large"`
	Locked            *bool         `json:"locked"`
	GenerateFollowing *bool         `json:"generate_following"`
}
