package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	otelMocks "lodge/infras/otel/mocks"
	pgMocks "lodge/infras/postgres/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	roomTypeMocks "lodge/internal/domains/roomtype/mocks"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/clock"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomTypeRepo, cfg, mockCache, mockOtel, pgMocks.NewTxer(), clock.NewFixed(testNow))

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateRoomRequest{
				RoomNo:     "101",
				FloorID:    1,
				RoomTypeID: 2,
			},
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room type does not exist",
			req: dto.CreateRoomRequest{
				RoomNo:     "101",
				FloorID:    1,
				RoomTypeID: 99,
			},
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateRoomRequest{
				RoomNo:     "101",
				FloorID:    1,
				RoomTypeID: 2,
			},
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomTypeRepo, cfg, mockCache, mockOtel, pgMocks.NewTxer(), clock.NewFixed(testNow))

	room := model.Room{
		ID:         7,
		RoomNo:     "101",
		FloorID:    1,
		RoomTypeID: 2,
		Status:     model.RoomStatusAvailable,
	}

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantID    int64
	}{
		{
			name: "cache hit",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  7,
		},
		{
			name: "room not found",
			id:   99,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != 0 {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestRoomService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomTypeRepo, cfg, mockCache, mockOtel, pgMocks.NewTxer(), clock.NewFixed(testNow))

	room := model.Room{
		ID:     7,
		RoomNo: "101",
		Status: model.RoomStatusAvailable,
	}

	tests := []struct {
		name      string
		id        int64
		req       dto.SetRoomStatusRequest
		setupMock func()
		wantErr   bool
		wantKind  string
	}{
		{
			name: "successful status change with history",
			id:   7,
			req:  dto.SetRoomStatusRequest{Status: "maintenance"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					InsertStatusHistoryTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "unknown status value",
			id:        7,
			req:       dto.SetRoomStatusRequest{Status: "exploded"},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
		{
			name: "room not found",
			id:   99,
			req:  dto.SetRoomStatusRequest{Status: "occupied"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "same status is a no-op",
			id:   7,
			req:  dto.SetRoomStatusRequest{Status: "available"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: false,
		},
		{
			name: "transaction error surfaces as store failure",
			id:   7,
			req:  dto.SetRoomStatusRequest{Status: "occupied"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("write failed"))
			},
			wantErr:  true,
			wantKind: failure.KindStoreFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
			err := svc.SetStatus(ctx, tt.id, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
