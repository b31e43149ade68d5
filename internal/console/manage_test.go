package console_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	blacklistDto "grandhotel/internal/domains/blacklist/model/dto"
	"grandhotel/internal/domains/booking/model"
	bookingDto "grandhotel/internal/domains/booking/model/dto"
	couponDto "grandhotel/internal/domains/coupon/model/dto"
	inquiryDto "grandhotel/internal/domains/inquiry/model/dto"
	"grandhotel/internal/domains/pricing"
	reviewDto "grandhotel/internal/domains/review/model/dto"
	roomDto "grandhotel/internal/domains/room/model/dto"
	"grandhotel/internal/gateway"
	gatewayMocks "grandhotel/internal/gateway/mocks"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
)

var offlineErr = &gateway.NetworkError{Resource: gateway.ResourceRooms, Method: http.MethodPost}

func TestConsole_Status(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		want    model.Status
		wantErr string
	}{
		{name: "spaced", status: "Checked In", want: model.StatusCheckedIn},
		{name: "joined", status: "CheckedOut", want: model.StatusCheckedOut},
		{name: "lower case", status: "cancelled", want: model.StatusCancelled},
		{name: "unknown", status: "Pending", wantErr: `unknown status "Pending"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, gw, out := newConsole(t)

			if tt.wantErr == "" {
				gw.EXPECT().Session(gomock.Any()).Return(gateway.Session{Role: constant.RoleAdmin}, true, nil)
				gw.EXPECT().UpdateBookingStatus(gomock.Any(), bookingDto.UpdateStatusRequest{ID: "b-1", Status: tt.want}).
					Return(gateway.Result[gateway.Empty]{Source: gateway.SourceRemote}, nil)
			}

			err := c.Run(context.Background(), []string{"status", "-id", "b-1", "-status", tt.status})

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Contains(t, out.String(), "booking b-1 is now "+string(tt.want))
		})
	}
}

func TestConsole_AdminCommands(t *testing.T) {
	empty := gateway.Result[gateway.Empty]{Source: gateway.SourceRemote}

	tests := []struct {
		name   string
		args   []string
		expect func(gw *gatewayMocks.MockGateway)
		want   string
	}{
		{
			name: "delete booking",
			args: []string{"delete-booking", "-id", "b-1"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().DeleteBooking(gomock.Any(), "b-1").Return(empty, nil)
			},
			want: "booking b-1 deleted",
		},
		{
			name: "list inquiries",
			args: []string{"inquiries"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().ListInquiries(gomock.Any()).Return(gateway.Result[[]inquiryDto.InquiryResponse]{
					Value: []inquiryDto.InquiryResponse{{ID: "i-1", Name: "Asha", Email: "asha@example.com", Message: "Late checkin?"}},
				}, nil)
			},
			want: "Late checkin?",
		},
		{
			name: "delete inquiry",
			args: []string{"delete-inquiry", "-id", "i-1"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().DeleteInquiry(gomock.Any(), "i-1").Return(empty, nil)
			},
			want: "inquiry i-1 deleted",
		},
		{
			name: "add room offline",
			args: []string{"room-add", "-name", "Garden Room", "-price", "3000", "-amenities", "Garden View, Patio"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().CreateRoom(gomock.Any(), roomDto.CreateRoomRequest{
					Name: "Garden Room", Price: 3000, Amenities: []string{"Garden View", "Patio"},
				}).Return(gateway.Result[roomDto.RoomResponse]{
					Value: roomDto.RoomResponse{ID: "r-9", Name: "Garden Room"}, Source: gateway.SourceLocal, Err: offlineErr,
				}, nil)
			},
			want: "room Garden Room added as r-9",
		},
		{
			name: "edit room",
			args: []string{"room-edit", "-id", "r-9", "-name", "Garden Suite", "-price", "3500"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().UpdateRoom(gomock.Any(), roomDto.UpdateRoomRequest{ID: "r-9", Name: "Garden Suite", Price: 3500}).Return(empty, nil)
			},
			want: "room r-9 updated",
		},
		{
			name: "delete room",
			args: []string{"room-delete", "-id", "r-9"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().DeleteRoom(gomock.Any(), "r-9").Return(empty, nil)
			},
			want: "room r-9 deleted",
		},
		{
			name: "save coupon",
			args: []string{"coupon-save", "-code", "flat300", "-discount", "300", "-type", "flat"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().SaveCoupon(gomock.Any(), couponDto.SaveCouponRequest{Code: "flat300", Discount: 300, Type: pricing.CouponFlat}).
					Return(gateway.Result[couponDto.CouponResponse]{Value: couponDto.CouponResponse{Code: "FLAT300"}}, nil)
			},
			want: "coupon FLAT300 saved",
		},
		{
			name: "delete coupon",
			args: []string{"coupon-delete", "-code", "flat300"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().DeleteCoupon(gomock.Any(), "flat300").Return(empty, nil)
			},
			want: "coupon FLAT300 deleted",
		},
		{
			name: "list blacklist",
			args: []string{"blacklist"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().ListBlacklist(gomock.Any()).Return(gateway.Result[[]blacklistDto.EntryResponse]{
					Value: []blacklistDto.EntryResponse{{Phone: "+919876543210", Reason: "no show"}},
				}, nil)
			},
			want: "+919876543210",
		},
		{
			name: "add blacklist",
			args: []string{"blacklist-add", "-phone", "98765 43210", "-reason", "no show"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().AddBlacklist(gomock.Any(), blacklistDto.AddEntryRequest{Phone: "98765 43210", Reason: "no show"}).
					Return(gateway.Result[blacklistDto.EntryResponse]{Value: blacklistDto.EntryResponse{Phone: "+919876543210"}}, nil)
			},
			want: "+919876543210 added to the blacklist",
		},
		{
			name: "remove blacklist",
			args: []string{"blacklist-remove", "-phone", "9876543210"},
			expect: func(gw *gatewayMocks.MockGateway) {
				gw.EXPECT().RemoveBlacklist(gomock.Any(), "9876543210").Return(empty, nil)
			},
			want: "9876543210 removed from the blacklist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, gw, out := newConsole(t)

			gw.EXPECT().Session(gomock.Any()).Return(gateway.Session{Role: constant.RoleAdmin}, true, nil)
			tt.expect(gw)

			err := c.Run(context.Background(), tt.args)

			assert.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestConsole_AdminCommandsNeedSession(t *testing.T) {
	for _, args := range [][]string{
		{"delete-booking", "-id", "b-1"},
		{"room-delete", "-id", "r-1"},
		{"blacklist"},
	} {
		t.Run(args[0], func(t *testing.T) {
			c, gw, _ := newConsole(t)

			gw.EXPECT().Session(gomock.Any()).Return(gateway.Session{Role: constant.RoleUser}, true, nil)

			err := c.Run(context.Background(), args)

			assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
		})
	}
}

func TestConsole_MissingIDs(t *testing.T) {
	c, _, _ := newConsole(t)

	for _, name := range []string{"delete-booking", "delete-inquiry", "room-delete"} {
		err := c.Run(context.Background(), []string{name})

		assert.EqualError(t, err, "missing -id")
	}

	err := c.Run(context.Background(), []string{"room-edit", "-name", "Garden Suite"})
	assert.EqualError(t, err, "missing -id")
}

func TestConsole_GuestFeedback(t *testing.T) {
	t.Run("reviews", func(t *testing.T) {
		c, gw, out := newConsole(t)

		gw.EXPECT().ListReviews(gomock.Any()).Return(gateway.Result[[]reviewDto.ReviewResponse]{
			Value: []reviewDto.ReviewResponse{{ID: "v-1", Name: "Asha", Text: "Lovely stay", Rating: 4}},
		}, nil)

		assert.NoError(t, c.Run(context.Background(), []string{"reviews"}))
		assert.Contains(t, out.String(), "**** Asha")
		assert.Contains(t, out.String(), "Lovely stay")
	})

	t.Run("review", func(t *testing.T) {
		c, gw, out := newConsole(t)

		gw.EXPECT().CreateReview(gomock.Any(), reviewDto.CreateReviewRequest{Name: "Asha", Text: "Lovely stay"}).
			Return(gateway.Result[reviewDto.ReviewResponse]{Value: reviewDto.ReviewResponse{Name: "Asha", Rating: 5}}, nil)

		assert.NoError(t, c.Run(context.Background(), []string{"review", "-name", "Asha", "-text", "Lovely stay"}))
		assert.Contains(t, out.String(), "your 5 star review is posted")
	})

	t.Run("inquire offline", func(t *testing.T) {
		c, gw, out := newConsole(t)

		req := inquiryDto.CreateInquiryRequest{Name: "Asha", Email: "asha@example.com", Message: "Late checkin?"}
		gw.EXPECT().CreateInquiry(gomock.Any(), req).Return(gateway.Result[inquiryDto.InquiryResponse]{
			Source: gateway.SourceLocal, Err: offlineErr,
		}, nil)

		err := c.Run(context.Background(), []string{"inquire", "-name", "Asha", "-email", "asha@example.com", "-message", "Late checkin?"})

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "offline")
		assert.Contains(t, out.String(), "message sent")
	})

	t.Run("inquire missing fields", func(t *testing.T) {
		c, _, _ := newConsole(t)

		err := c.Run(context.Background(), []string{"inquire", "-name", "Asha"})

		assert.EqualError(t, err, "missing -email, -message")
	})
}
