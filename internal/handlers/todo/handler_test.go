package todo_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	otelMocks "todoapi/infras/otel/mocks"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/service/mocks"
	todoHandler "todoapi/internal/handlers/todo"
	"todoapi/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTodo(ctrl)

	handler := todoHandler.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func doRequest(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func TestGetTodos(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().GetAll(gomock.Any()).Return([]dto.TodoResponse{
		{TodoID: 1, Content: "walk the dog", Completed: false},
		{TodoID: 2, Content: "water plants", Completed: true},
	}, nil)

	rec := doRequest(router, http.MethodGet, "/todos", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"todo_id":1,"content":"walk the dog","completed":false},{"todo_id":2,"content":"water plants","completed":true}]`,
		rec.Body.String())
}

func TestGetTodosEmpty(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().GetAll(gomock.Any()).Return([]dto.TodoResponse{}, nil)

	rec := doRequest(router, http.MethodGet, "/todos", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetTodoByID(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().Get(gomock.Any(), int64(3)).
		Return(dto.TodoResponse{TodoID: 3, Content: "buy milk", Completed: false}, nil)

	rec := doRequest(router, http.MethodGet, "/todos/3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"todo_id":3,"content":"buy milk","completed":false}`, rec.Body.String())
}

func TestGetTodoByIDNotFound(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().Get(gomock.Any(), int64(99)).
		Return(dto.TodoResponse{}, failure.NotFound("Todo with id 99 not found"))

	rec := doRequest(router, http.MethodGet, "/todos/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Todo with id 99 not found"}`, rec.Body.String())
}

func TestGetTodoByIDNonInteger(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/todos/abc", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":"todo_id must be an integer"}`, rec.Body.String())
}

func TestCreateTodo(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().Create(gomock.Any(), dto.CreateTodoRequest{Content: "buy milk", Completed: false}).
		Return(dto.TodoResponse{TodoID: 1, Content: "buy milk", Completed: false}, nil)

	rec := doRequest(router, http.MethodPost, "/todos", `{"content":"buy milk"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"todo_id":1,"content":"buy milk","completed":false}`, rec.Body.String())
}

func TestCreateTodoEmptyContent(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/todos", `{"content":""}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateTodoMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/todos", `{"content":`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateTodoWrongType(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/todos", `{"content":"x","completed":"yes"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateTodoPartial(t *testing.T) {
	router, svc := newTestRouter(t)

	completed := true

	svc.EXPECT().Update(gomock.Any(), int64(5), dto.UpdateTodoRequest{Completed: &completed}).
		Return(dto.TodoResponse{TodoID: 5, Content: "buy milk", Completed: true}, nil)

	rec := doRequest(router, http.MethodPut, "/todos/5", `{"completed":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"todo_id":5,"content":"buy milk","completed":true}`, rec.Body.String())
}

func TestUpdateTodoEmptyBody(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().Update(gomock.Any(), int64(5), dto.UpdateTodoRequest{}).
		Return(dto.TodoResponse{TodoID: 5, Content: "buy milk", Completed: false}, nil)

	rec := doRequest(router, http.MethodPut, "/todos/5", `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"todo_id":5,"content":"buy milk","completed":false}`, rec.Body.String())
}

func TestUpdateTodoNotFound(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().Update(gomock.Any(), int64(9), dto.UpdateTodoRequest{}).
		Return(dto.TodoResponse{}, failure.NotFound("Todo with id 9 not found"))

	rec := doRequest(router, http.MethodPut, "/todos/9", `{}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Todo with id 9 not found"}`, rec.Body.String())
}

func TestUpdateTodoEmptyContent(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPut, "/todos/5", `{"content":""}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateTodoNonInteger(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPut, "/todos/abc", `{}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":"todo_id must be an integer"}`, rec.Body.String())
}

func TestDeleteTodo(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	rec := doRequest(router, http.MethodDelete, "/todos/4", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTodoNotFound(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().Delete(gomock.Any(), int64(4)).
		Return(failure.NotFound("Todo with id 4 not found"))

	rec := doRequest(router, http.MethodDelete, "/todos/4", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Todo with id 4 not found"}`, rec.Body.String())
}
