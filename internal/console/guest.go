package console

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	bookingDto "grandhotel/internal/domains/booking/model/dto"
	"grandhotel/internal/domains/pricing"
	roomDto "grandhotel/internal/domains/room/model/dto"
	userDto "grandhotel/internal/domains/user/model/dto"
	"grandhotel/internal/workflow"
	"grandhotel/shared/base64"
	"grandhotel/shared/failure"
)

func (c *Console) rooms(ctx context.Context, args []string) error {
	var filter roomDto.Filter

	fs := c.flags("rooms")
	fs.StringVar(&filter.Search, "search", "", "name or amenity contains")
	fs.StringVar(&filter.Amenity, "amenity", "", "exact amenity")
	fs.IntVar(&filter.MinPrice, "min", 0, "minimum nightly price")
	fs.IntVar(&filter.MaxPrice, "max", 0, "maximum nightly price")

	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := c.gateway.ListRooms(ctx)
	if err != nil {
		return err
	}

	c.offline(res.Err)

	w := c.table()
	fmt.Fprintln(w, "ID\tROOM\tPRICE\tAMENITIES")

	for _, room := range filter.Apply(res.Value) {
		fmt.Fprintf(w, "%s\t%s\t₹%s\t%s\n", room.ID, room.Name, room.PriceDisplay, strings.Join(room.Amenities, ", "))
	}

	return w.Flush()
}

func (c *Console) findRoom(ctx context.Context, key string) (roomDto.RoomResponse, error) {
	res, err := c.gateway.ListRooms(ctx)
	if err != nil {
		return roomDto.RoomResponse{}, err
	}

	for _, room := range res.Value {
		if room.ID == key || strings.EqualFold(room.Name, key) {
			return room, nil
		}
	}

	return roomDto.RoomResponse{}, failure.NotFound("room")
}

// book walks one booking through the workflow and persists it.
func (c *Console) book(ctx context.Context, args []string) error {
	var (
		roomKey, checkin, checkout, coupon, govtIDPath string
		guest                                          workflow.Guest
	)

	fs := c.flags("book")
	fs.StringVar(&roomKey, "room", "", "room id or name")
	fs.StringVar(&checkin, "checkin", "", "YYYY-MM-DD")
	fs.StringVar(&checkout, "checkout", "", "YYYY-MM-DD")
	fs.StringVar(&guest.Name, "name", "", "guest name")
	fs.StringVar(&guest.Email, "email", "", "guest email")
	fs.StringVar(&guest.DOB, "dob", "", "date of birth YYYY-MM-DD")
	fs.StringVar(&govtIDPath, "govt-id", "", "path to a scan of the government id")
	fs.StringVar(&coupon, "coupon", "", "coupon code")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := required(map[string]string{"room": roomKey, "checkin": checkin, "checkout": checkout}); err != nil {
		return err
	}

	if govtIDPath != "" {
		data, err := os.ReadFile(govtIDPath)
		if err != nil {
			return fmt.Errorf("failed to read govt id: %w", err)
		}

		guest.GovtIDName = govtIDPath[strings.LastIndex(govtIDPath, string(os.PathSeparator))+1:]
		guest.GovtIDData = base64.Encode(http.DetectContentType(data), data)
	}

	room, err := c.findRoom(ctx, roomKey)
	if err != nil {
		return err
	}

	session, _, err := c.gateway.Session(ctx)
	if err != nil {
		return err
	}

	booking, err := c.engine.Start(workflow.Session{UserName: session.Name, UserPhone: session.Phone}, workflow.Room{Name: room.Name, Price: room.Price})
	if err != nil {
		return err
	}

	if err := booking.EnterDates(checkin, checkout); err != nil {
		return err
	}

	if err := booking.EnterGuest(guest); err != nil {
		return err
	}

	if coupon != "" {
		res, err := c.gateway.ValidateCoupon(ctx, coupon)
		if err != nil {
			return err
		}

		applied := res.Value.Pricing()
		if err := booking.ApplyCoupon(&applied); err != nil {
			return err
		}
	}

	quote, err := booking.ComputePrice()
	if err != nil {
		return err
	}

	payment, err := booking.RequestPayment()
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s, %d night(s), %s season\n", room.Name, quote.Nights, quote.Season)

	if quote.Discount > 0 {
		fmt.Fprintf(c.out, "subtotal ₹%s, discount ₹%s\n", pricing.FormatAmount(quote.Subtotal), pricing.FormatAmount(quote.Discount))
	}

	fmt.Fprintf(c.out, "total ₹%s\npay: %s\nqr:  %s\n", pricing.FormatAmount(payment.Amount), payment.Reference, payment.QRCodeURL)

	saved, err := booking.Confirm(ctx)
	if err != nil {
		return err
	}

	c.engine.Wait()

	fmt.Fprintf(c.out, "booking %s %s\n", saved.ID, saved.Status)

	if booking.Draft().Offline {
		fmt.Fprintln(c.out, "(saved offline; it stays on this device)")
	}

	return nil
}

func (c *Console) register(ctx context.Context, args []string) error {
	var req userDto.RegisterRequest

	fs := c.flags("register")
	fs.StringVar(&req.Name, "name", "", "full name")
	fs.StringVar(&req.Phone, "phone", "", "phone number")
	fs.StringVar(&req.Password, "password", "", "password")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := required(map[string]string{"name": req.Name, "phone": req.Phone, "password": req.Password}); err != nil {
		return err
	}

	res, err := c.gateway.RegisterUser(ctx, req)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "registered %s\n", res.Value.Name)

	return nil
}

func (c *Console) signin(ctx context.Context, args []string) error {
	var req userDto.LoginRequest

	fs := c.flags("signin")
	fs.StringVar(&req.Phone, "phone", "", "phone number")
	fs.StringVar(&req.Password, "password", "", "password")

	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := c.gateway.LoginUser(ctx, req)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "welcome back, %s\n", res.Value.Name)

	return nil
}

func (c *Console) logout(ctx context.Context, _ []string) error {
	return c.gateway.Logout(ctx)
}

// history lists the bookings whose guest name matches the signed-in user.
func (c *Console) history(ctx context.Context, _ []string) error {
	session, found, err := c.gateway.Session(ctx)
	if err != nil {
		return err
	}

	if !found {
		return failure.Unauthorized("sign in first")
	}

	res, err := c.gateway.ListBookings(ctx)
	if err != nil {
		return err
	}

	c.offline(res.Err)

	var own []bookingDto.BookingResponse

	for _, b := range res.Value {
		if strings.EqualFold(strings.TrimSpace(b.Name), strings.TrimSpace(session.Name)) {
			own = append(own, b)
		}
	}

	return c.printBookings(own)
}

func (c *Console) printBookings(bookings []bookingDto.BookingResponse) error {
	w := c.table()
	fmt.Fprintln(w, "ID\tGUEST\tROOM\tCHECK-IN\tCHECK-OUT\tPRICE\tSTATUS")

	for _, b := range bookings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t₹%s\t%s\n", b.ID, b.Name, b.Room, b.Checkin, b.Checkout, pricing.FormatAmount(b.Price), b.Status)
	}

	return w.Flush()
}
