package marketplace

import (
	"testing"

	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// routerContext lets queryStub embed router.Context under a field name that
// does not shadow the interface's Context() method.
type routerContext = router.Context

// queryStub overrides just the query accessors; everything else panics if
// touched, which is what we want in these tests.
type queryStub struct {
	routerContext
	ints    map[string]int
	strings map[string]string
}

func (s queryStub) QueryInt(key string, def int) int {
	if v, ok := s.ints[key]; ok {
		return v
	}
	return def
}

func (s queryStub) Query(key string, def ...string) string {
	if v, ok := s.strings[key]; ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name        string
		ints        map[string]int
		strings     map[string]string
		wantLimit   int
		wantOffset  int
		wantKeyword string
	}{
		{"defaults", nil, nil, 10, 0, ""},
		{"first page explicit", map[string]int{"pageIndex": 0, "pageSize": 5}, nil, 5, 0, ""},
		{"offset is pageIndex times pageSize", map[string]int{"pageIndex": 3, "pageSize": 20}, nil, 20, 60, ""},
		{"keyword passes through", nil, map[string]string{"keyword": "design"}, 10, 0, "design"},
		{"negative pageIndex clamps to zero", map[string]int{"pageIndex": -2}, nil, 10, 0, ""},
		{"zero pageSize falls back to default", map[string]int{"pageIndex": 2, "pageSize": 0}, nil, 10, 20, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := queryStub{ints: tt.ints, strings: tt.strings}

			limit, offset, keyword := pageParams(ctx)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantKeyword, keyword)
		})
	}
}

func TestUserView(t *testing.T) {
	user := &jobhub.User{
		ID:            uuid.New(),
		Role:          jobhub.RoleUser,
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Skill:         "design,frontend",
		Certification: "",
	}

	view := userView(user)

	assert.Equal(t, []string{"design", "frontend"}, view["skill"])
	assert.Equal(t, []string{}, view["certification"])
	assert.Equal(t, "jane@example.com", view["email"])

	// the password hash never leaves the server
	_, leaked := view["password_hash"]
	assert.False(t, leaked)
	_, leaked = view["password"]
	assert.False(t, leaked)
}

func TestUserViews(t *testing.T) {
	views := userViews([]*jobhub.User{
		{Name: "Jane"},
		{Name: "John"},
	})
	assert.Len(t, views, 2)

	assert.NotNil(t, userViews(nil))
	assert.Empty(t, userViews(nil))
}
