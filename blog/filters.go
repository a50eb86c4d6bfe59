package blog

// ArticleFilter narrows ListArticles. Nil pointers are left out.
type ArticleFilter struct {
	Key     string `json:"key,omitempty"`
	CateID  int    `json:"cateId,omitempty"`
	TagID   int    `json:"tagId,omitempty"`
	IsDraft *int   `json:"isDraft,omitempty"`
	IsDel   *int   `json:"isDel,omitempty"`
}

// ListFilter is the common filter of the list and paging endpoints.
type ListFilter struct {
	Key       string `json:"key,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// CommentFilter narrows comment listings.
type CommentFilter struct {
	ListFilter
	Pattern string `json:"pattern,omitempty"`
	Status  *int   `json:"status,omitempty"`
	Content string `json:"content,omitempty"`
}

// WallFilter narrows wall listings.
type WallFilter struct {
	ListFilter
	CateID int  `json:"cateId,omitempty"`
	Status *int `json:"status,omitempty"`
}

// LinkFilter narrows link listings.
type LinkFilter struct {
	ListFilter
	Status *int `json:"status,omitempty"`
}

// Int returns a pointer to v, for the optional filter fields.
func Int(v int) *int { return &v }
