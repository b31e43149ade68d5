package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	blacklistDto "grandhotel/internal/domains/blacklist/model/dto"
	inquiryDto "grandhotel/internal/domains/inquiry/model/dto"
	reviewDto "grandhotel/internal/domains/review/model/dto"
	roomDto "grandhotel/internal/domains/room/model/dto"
	"grandhotel/internal/gateway"
	"grandhotel/shared/constant"

	"github.com/stretchr/testify/assert"
)

type request struct {
	method string
	path   string
	query  string
}

// cannedAPI answers every request with payload and remembers what was asked.
type cannedAPI struct {
	mu       sync.Mutex
	payload  map[string]any
	requests []request
}

func (c *cannedAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = append(c.requests, request{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery})

	body := map[string]any{"success": true}
	for k, v := range c.payload {
		body[k] = v
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	_ = json.NewEncoder(w).Encode(body)
}

func (c *cannedAPI) last() request {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.requests) == 0 {
		return request{}
	}

	return c.requests[len(c.requests)-1]
}

func TestGateway_WrappersOnline(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		call    func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error)
		want    request
	}{
		{
			name: "delete booking",
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.DeleteBooking(ctx, "b-1")
				return res.Source, err
			},
			want: request{method: http.MethodDelete, path: "/bookings", query: "id=b-1"},
		},
		{
			name:    "create inquiry",
			payload: map[string]any{"inquiry": inquiryDto.InquiryResponse{ID: "i-1", Name: "Asha"}},
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.CreateInquiry(ctx, inquiryDto.CreateInquiryRequest{Name: "Asha", Email: "asha@example.com", Message: "Late checkin?"})
				assert.Equal(t, "i-1", res.Value.ID)
				return res.Source, err
			},
			want: request{method: http.MethodPost, path: "/inquiries"},
		},
		{
			name: "delete inquiry",
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.DeleteInquiry(ctx, "i-1")
				return res.Source, err
			},
			want: request{method: http.MethodDelete, path: "/inquiries", query: "id=i-1"},
		},
		{
			name:    "create room",
			payload: map[string]any{"room": roomDto.RoomResponse{ID: "r-1", Name: "Garden Room"}},
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.CreateRoom(ctx, roomDto.CreateRoomRequest{Name: "Garden Room", Price: 3000})
				assert.Equal(t, "r-1", res.Value.ID)
				return res.Source, err
			},
			want: request{method: http.MethodPost, path: "/rooms"},
		},
		{
			name: "update room",
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.UpdateRoom(ctx, roomDto.UpdateRoomRequest{ID: "r-1", Name: "Garden Room", Price: 3200})
				return res.Source, err
			},
			want: request{method: http.MethodPut, path: "/rooms"},
		},
		{
			name: "delete room",
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.DeleteRoom(ctx, "r-1")
				return res.Source, err
			},
			want: request{method: http.MethodDelete, path: "/rooms", query: "id=r-1"},
		},
		{
			name:    "list reviews",
			payload: map[string]any{"reviews": []reviewDto.ReviewResponse{{ID: "v-1", Rating: 5}}},
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.ListReviews(ctx)
				assert.Len(t, res.Value, 1)
				return res.Source, err
			},
			want: request{method: http.MethodGet, path: "/reviews"},
		},
		{
			name:    "create review",
			payload: map[string]any{"review": reviewDto.ReviewResponse{ID: "v-2", Rating: 4}},
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.CreateReview(ctx, reviewDto.CreateReviewRequest{Name: "Asha", Text: "Lovely stay", Rating: 4})
				assert.Equal(t, 4, res.Value.Rating)
				return res.Source, err
			},
			want: request{method: http.MethodPost, path: "/reviews"},
		},
		{
			name:    "list blacklist",
			payload: map[string]any{"blacklist": []blacklistDto.EntryResponse{{Phone: "+919876543210"}}},
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.ListBlacklist(ctx)
				assert.Len(t, res.Value, 1)
				return res.Source, err
			},
			want: request{method: http.MethodGet, path: "/blacklist"},
		},
		{
			name:    "add blacklist",
			payload: map[string]any{"entry": blacklistDto.EntryResponse{Phone: "+919876543210", Reason: "no show"}},
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.AddBlacklist(ctx, blacklistDto.AddEntryRequest{Phone: "98765 43210", Reason: "no show"})
				assert.Equal(t, "+919876543210", res.Value.Phone)
				return res.Source, err
			},
			want: request{method: http.MethodPost, path: "/blacklist"},
		},
		{
			name: "remove blacklist",
			call: func(ctx context.Context, gw gateway.Gateway) (gateway.Source, error) {
				res, err := gw.RemoveBlacklist(ctx, "98765 43210")
				return res.Source, err
			},
			want: request{method: http.MethodDelete, path: "/blacklist", query: "phone=%2B919876543210"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &cannedAPI{payload: tt.payload}
			srv := httptest.NewServer(api)

			defer srv.Close()

			gw, _ := newGateway(t, srv.URL)

			source, err := tt.call(context.Background(), gw)

			assert.NoError(t, err)
			assert.Equal(t, gateway.SourceRemote, source)
			assert.Equal(t, tt.want, api.last())
		})
	}
}

func TestGateway_RoomsOffline(t *testing.T) {
	gw, _ := newGateway(t, unreachable())
	ctx := context.Background()

	created, err := gw.CreateRoom(ctx, roomDto.CreateRoomRequest{Name: "Garden Room", Price: 3000})
	assert.NoError(t, err)
	assert.True(t, created.Offline())
	assert.NotEmpty(t, created.Value.ID)

	updated, err := gw.UpdateRoom(ctx, roomDto.UpdateRoomRequest{ID: created.Value.ID, Name: "Garden Suite", Price: 3500})
	assert.NoError(t, err)
	assert.True(t, updated.Offline())

	rooms, err := gw.ListRooms(ctx)
	assert.NoError(t, err)

	if assert.Len(t, rooms.Value, 4) {
		assert.Equal(t, "Garden Suite", rooms.Value[3].Name)
		assert.Equal(t, 3500, rooms.Value[3].Price)
	}

	_, err = gw.DeleteRoom(ctx, rooms.Value[0].ID)
	assert.NoError(t, err)

	rooms, err = gw.ListRooms(ctx)
	assert.NoError(t, err)
	assert.Len(t, rooms.Value, 3)
	assert.Equal(t, "Executive Suite", rooms.Value[0].Name)
}

func TestGateway_GuestWritesOffline(t *testing.T) {
	gw, _ := newGateway(t, unreachable())
	ctx := context.Background()

	inquiry, err := gw.CreateInquiry(ctx, inquiryDto.CreateInquiryRequest{Name: "Asha", Email: "asha@example.com", Message: "Late checkin?"})
	assert.NoError(t, err)
	assert.True(t, inquiry.Offline())

	inquiries, err := gw.ListInquiries(ctx)
	assert.NoError(t, err)
	assert.Len(t, inquiries.Value, 1)

	_, err = gw.DeleteInquiry(ctx, inquiry.Value.ID)
	assert.NoError(t, err)

	inquiries, err = gw.ListInquiries(ctx)
	assert.NoError(t, err)
	assert.Empty(t, inquiries.Value)

	review, err := gw.CreateReview(ctx, reviewDto.CreateReviewRequest{Name: "Asha", Text: "Lovely stay"})
	assert.NoError(t, err)
	assert.True(t, review.Offline())
	assert.Equal(t, 5, review.Value.Rating)

	reviews, err := gw.ListReviews(ctx)
	assert.NoError(t, err)

	if assert.Len(t, reviews.Value, 1) {
		assert.Equal(t, review.Value.ID, reviews.Value[0].ID)
	}
}

func TestGateway_BlacklistOffline(t *testing.T) {
	gw, _ := newGateway(t, unreachable())
	ctx := context.Background()

	entry, err := gw.AddBlacklist(ctx, blacklistDto.AddEntryRequest{Phone: "98765 43210", Reason: "no show"})
	assert.NoError(t, err)
	assert.True(t, entry.Offline())
	assert.Equal(t, "+919876543210", entry.Value.Phone)

	_, err = gw.AddBlacklist(ctx, blacklistDto.AddEntryRequest{Phone: "+91 98765 43210", Reason: "damaged room"})
	assert.NoError(t, err)

	entries, err := gw.ListBlacklist(ctx)
	assert.NoError(t, err)

	if assert.Len(t, entries.Value, 1) {
		assert.Equal(t, "damaged room", entries.Value[0].Reason)
	}

	_, err = gw.RemoveBlacklist(ctx, "9876543210")
	assert.NoError(t, err)

	entries, err = gw.ListBlacklist(ctx)
	assert.NoError(t, err)
	assert.Empty(t, entries.Value)
}
