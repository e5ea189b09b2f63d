package jwtware_test

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/goliatone/go-router"
	"github.com/stretchr/testify/mock"
)

// mockContext mocks router.Context
type mockContext struct {
	mock.Mock
	NextCalled bool
}

func (m *mockContext) Next() error {
	m.NextCalled = true
	return nil
}

func (m *mockContext) Context() context.Context {
	args := m.Called()
	c, ok := args.Get(0).(context.Context)
	if !ok {
		panic("arg needs to be context.Context")
	}
	return c
}

func (m *mockContext) SetContext(ctx context.Context) {
	m.Called(ctx)
}

func (m *mockContext) Path() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockContext) Method() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockContext) Body() []byte {
	args := m.Called()
	return args.Get(0).([]byte)
}

func (m *mockContext) Status(code int) router.Context {
	m.Called(code)
	return m
}

func (m *mockContext) SendString(s string) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *mockContext) Send(b []byte) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *mockContext) JSON(code int, val any) error {
	args := m.Called(code, val)
	return args.Error(0)
}

func (m *mockContext) NoContent(code int) error {
	args := m.Called(code)
	return args.Error(0)
}

func (m *mockContext) Render(name string, bind any, layout ...string) error {
	if len(layout) > 0 {
		args := m.Called(name, bind, layout[0])
		return args.Error(0)
	}
	args := m.Called(name, bind)
	return args.Error(0)
}

func (m *mockContext) Redirect(path string, status ...int) error {
	if len(status) > 0 {
		args := m.Called(path, status)
		return args.Error(0)
	}
	args := m.Called(path)
	return args.Error(0)
}

func (m *mockContext) RedirectToRoute(name string, data router.ViewContext, status ...int) error {
	if len(status) > 0 {
		args := m.Called(name, data, status[0])
		return args.Error(0)
	}
	args := m.Called(name, data)
	return args.Error(0)
}

func (m *mockContext) RedirectBack(fallback string, status ...int) error {
	if len(status) > 0 {
		args := m.Called(fallback, status)
		return args.Error(0)
	}
	args := m.Called(fallback)
	return args.Error(0)
}

func (m *mockContext) SetHeader(key, val string) router.Context {
	m.Called(key, val)
	return m
}

func (m *mockContext) Header(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func (m *mockContext) Get(key string, defaultValue any) any {
	args := m.Called(key, defaultValue)
	return args.Get(0)
}

func (m *mockContext) GetBool(key string, defaultValue bool) bool {
	args := m.Called(key, defaultValue)
	return args.Bool(0)
}

func (m *mockContext) GetInt(key string, def int) int {
	args := m.Called(key, def)
	return args.Int(0)
}

func (m *mockContext) Set(key string, val any) {
	m.Called(key, val)
}

func (m *mockContext) Bind(i any) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *mockContext) BindJSON(i any) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *mockContext) BindXML(i any) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *mockContext) BindQuery(i any) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *mockContext) CookieParser(i any) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *mockContext) Cookie(cookie *router.Cookie) {
	m.Called(cookie)
}

func (m *mockContext) Cookies(key string, defaultValue ...string) string {
	if len(defaultValue) > 0 {
		args := m.Called(key, defaultValue[0])
		return args.String(0)
	}
	args := m.Called(key)
	return args.String(0)
}

func (m *mockContext) Param(key string, defaultValue ...string) string {
	if len(defaultValue) > 0 {
		args := m.Called(key, defaultValue[0])
		return args.String(0)
	}
	args := m.Called(key)
	return args.String(0)
}

func (m *mockContext) ParamsInt(key string, defaultValue int) int {
	args := m.Called(key, defaultValue)
	return args.Int(0)
}

func (m *mockContext) Query(key string, defaultValue ...string) string {
	if len(defaultValue) > 0 {
		args := m.Called(key, defaultValue[0])
		return args.String(0)
	}
	args := m.Called(key)
	return args.String(0)
}

func (m *mockContext) QueryValues(key string) []string {
	args := m.Called(key)
	vals, _ := args.Get(0).([]string)
	return vals
}

func (m *mockContext) QueryInt(key string, defaultValue int) int {
	args := m.Called(key, defaultValue)
	return args.Int(0)
}

func (m *mockContext) Queries() map[string]string {
	args := m.Called()
	return args.Get(0).(map[string]string)
}

func (m *mockContext) GetString(key string, defaultValue string) string {
	args := m.Called(key, defaultValue)
	return args.String(0)
}

func (m *mockContext) Locals(key any, value ...any) any {
	if len(value) > 0 {
		m.Called(key, value[0])
		return nil
	}
	args := m.Called(key)
	return args.Get(0)
}

func (m *mockContext) OriginalURL() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockContext) OnNext(callback func() error) {
	m.Called(callback)
}

func (m *mockContext) Referer() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockContext) LocalsMerge(key any, value map[string]any) map[string]any {
	args := m.Called(key, value)
	merged, _ := args.Get(0).(map[string]any)
	return merged
}

func (m *mockContext) FormFile(key string) (*multipart.FileHeader, error) {
	args := m.Called(key)
	file, _ := args.Get(0).(*multipart.FileHeader)
	return file, args.Error(1)
}

func (m *mockContext) FormValue(key string, defaultValue ...string) string {
	if len(defaultValue) > 0 {
		args := m.Called(key, defaultValue[0])
		return args.String(0)
	}
	args := m.Called(key)
	return args.String(0)
}

func (m *mockContext) IP() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockContext) SendStatus(code int) error {
	args := m.Called(code)
	return args.Error(0)
}

func (m *mockContext) SendStream(r io.Reader) error {
	args := m.Called(r)
	return args.Error(0)
}

func (m *mockContext) RouteName() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockContext) RouteParams() map[string]string {
	args := m.Called()
	params, _ := args.Get(0).(map[string]string)
	return params
}
