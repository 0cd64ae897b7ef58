package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/service"
)

func TestChannelHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(svc *mockChannelService)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "defaults",
			query: "",
			setup: func(svc *mockChannelService) {
				svc.On("List", mock.Anything, service.ListParams{Size: 10}).
					Return([]*model.Channel{{ID: "1", Name: "A", CreatedTime: "t"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":"1","name":"A","description":"","createdTime":"t","videos":null}]`,
		},
		{
			name:  "filters are passed through",
			query: "?page=2&size=3&name=A&order=-name&containing=x",
			setup: func(svc *mockChannelService) {
				params := service.ListParams{Page: 2, Size: 3, Name: "A", Order: "-name", Containing: "x"}
				svc.On("List", mock.Anything, params).Return([]*model.Channel{{ID: "1"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non numeric page",
			query:      "?page=abc",
			setup:      func(svc *mockChannelService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"page must be an integer"}`,
		},
		{
			name:       "zero size",
			query:      "?size=0",
			setup:      func(svc *mockChannelService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "empty page",
			query: "?page=9",
			setup: func(svc *mockChannelService) {
				svc.On("List", mock.Anything, service.ListParams{Page: 9, Size: 10}).Return(nil, errors.ErrChannelNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Channel not found"}`,
		},
		{
			name:  "unknown order field",
			query: "?order=colour",
			setup: func(svc *mockChannelService) {
				svc.On("List", mock.Anything, mock.Anything).
					Return(nil, errors.New(errors.CodeInvalidArg, "unknown sort field: colour"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "internal error hides cause",
			query: "",
			setup: func(svc *mockChannelService) {
				svc.On("List", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockChannelService)
			tt.setup(svc)

			w := perform(newTestRouter(NewChannelHandler(svc)), http.MethodGet, "/videominer/channels"+tt.query, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestChannelHandler_Get(t *testing.T) {
	svc := new(mockChannelService)
	svc.On("Get", mock.Anything, "1").Return(&model.Channel{ID: "1", Name: "A", CreatedTime: "t"}, nil)
	svc.On("Get", mock.Anything, "404").Return(nil, errors.ErrChannelNotFound)
	r := newTestRouter(NewChannelHandler(svc))

	w := perform(r, http.MethodGet, "/videominer/channels/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Channel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "A", got.Name)

	w = perform(r, http.MethodGet, "/videominer/channels/404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Channel not found"}`, w.Body.String())
}

func TestChannelHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(mockChannelService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Channel) bool {
			return c.ID == "1" && c.Name == "A" && c.CreatedTime == "t"
		})).Return(&model.Channel{ID: "1", Name: "A", CreatedTime: "t", Videos: []model.Video{}}, nil)

		w := perform(newTestRouter(NewChannelHandler(svc)), http.MethodPost, "/videominer/channels",
			`{"id":"1","name":"A","createdTime":"t"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"1","name":"A","description":"","createdTime":"t","videos":[]}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	for name, body := range map[string]string{
		"missing name":         `{"id":"1","createdTime":"t"}`,
		"missing created time": `{"id":"1","name":"A"}`,
		"malformed":            `{"id":`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := new(mockChannelService)

			w := perform(newTestRouter(NewChannelHandler(svc)), http.MethodPost, "/videominer/channels", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestChannelHandler_Update(t *testing.T) {
	svc := new(mockChannelService)
	svc.On("Update", mock.Anything, "1", mock.MatchedBy(func(c *model.Channel) bool {
		return c.Name == "B"
	})).Return(nil)
	svc.On("Update", mock.Anything, "2", mock.Anything).Return(errors.ErrChannelNotFound)
	r := newTestRouter(NewChannelHandler(svc))

	w := perform(r, http.MethodPut, "/videominer/channels/1", `{"name":"B","createdTime":"t"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = perform(r, http.MethodPut, "/videominer/channels/2", `{"name":"B","createdTime":"t"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(r, http.MethodPut, "/videominer/channels/1", `{"createdTime":"t"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNumberOfCalls(t, "Update", 2)
}

func TestChannelHandler_Delete(t *testing.T) {
	svc := new(mockChannelService)
	svc.On("Delete", mock.Anything, "1").Return(nil)
	svc.On("Delete", mock.Anything, "2").Return(errors.ErrChannelNotFound)
	r := newTestRouter(NewChannelHandler(svc))

	assert.Equal(t, http.StatusNoContent, perform(r, http.MethodDelete, "/videominer/channels/1", "").Code)
	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodDelete, "/videominer/channels/2", "").Code)
}
