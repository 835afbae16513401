package dto

type GetPostsRequest struct {
	Start    int    `form:"start,default=0" binding:"min=0"`
	End      int    `form:"end,default=8" binding:"min=0"`
	Category string `form:"category"`
}

type PostCountRequest struct {
	Category string `form:"category"`
}

type SearchPostsRequest struct {
	Query string `form:"q" binding:"required"`
}

type RelatedPostsRequest struct {
	PostID      string `form:"postId" binding:"required"`
	CategoryIDs string `form:"categoryIds"`
	Limit       int    `form:"limit,default=3" binding:"min=1,max=20"`
}
