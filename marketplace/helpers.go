package marketplace

import (
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
)

// parseIDParam parses the :id route parameter. A malformed id responds 400
// and returns false; handlers just bail out.
func parseIDParam(ctx router.Context, name string) (uuid.UUID, bool, error) {
	raw := ctx.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, jobhub.Respond(ctx, router.StatusBadRequest, "Invalid "+name+" parameter")
	}
	return id, true, nil
}

// pageParams reads the pageIndex/pageSize/keyword query trio used by every
// paginated listing. pageIndex is zero-based.
func pageParams(ctx router.Context) (limit, offset int, keyword string) {
	pageIndex := ctx.QueryInt("pageIndex", 0)
	pageSize := ctx.QueryInt("pageSize", 10)

	if pageSize <= 0 {
		pageSize = 10
	}
	if pageIndex < 0 {
		pageIndex = 0
	}

	return pageSize, pageIndex * pageSize, ctx.Query("keyword", "")
}

// userView mirrors the original user payload: skills and certifications go
// out as lists even though they are stored comma-joined.
func userView(u *jobhub.User) map[string]any {
	return map[string]any{
		"id":            u.ID,
		"role":          u.Role,
		"name":          u.Name,
		"email":         u.Email,
		"phone":         u.Phone,
		"birthday":      u.Birthday,
		"gender":        u.Gender,
		"skill":         u.Skills(),
		"certification": u.Certifications(),
		"avatar":        u.Avatar,
	}
}

func userViews(users []*jobhub.User) []map[string]any {
	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, userView(u))
	}
	return out
}
