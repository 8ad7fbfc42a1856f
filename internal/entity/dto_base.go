package entity

// PageMeta describes one page of an ordered result set. Pages is
// ceil(total/size) with a floor of one page, so an empty set still reports a
// single empty page.
type PageMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int64 `json:"pages"`
}

// PageResponse is the wire shape of every paginated list.
type PageResponse struct {
	Items interface{} `json:"items"`
	PageMeta
}

// ListQuery carries the common list parameters. Lang is validated separately
// by the i18n package.
type ListQuery struct {
	Page   int    `form:"page,default=1" json:"page"`
	Size   int    `form:"size,default=10" json:"size"`
	Lang   string `form:"lang" json:"lang"`
	Search string `form:"search" json:"search"`
}
