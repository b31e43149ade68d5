package console

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	blacklistDto "grandhotel/internal/domains/blacklist/model/dto"
	couponDto "grandhotel/internal/domains/coupon/model/dto"
	"grandhotel/internal/domains/pricing"
	roomDto "grandhotel/internal/domains/room/model/dto"
	"grandhotel/shared/base64"
)

func (c *Console) deleteBooking(ctx context.Context, args []string) error {
	id, err := c.idFlag("delete-booking", "booking id", args)
	if err != nil {
		return err
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.DeleteBooking(ctx, id)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "booking %s deleted\n", id)

	return nil
}

func (c *Console) inquiries(ctx context.Context, _ []string) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.ListInquiries(ctx)
	if err != nil {
		return err
	}

	c.offline(res.Err)

	w := c.table()
	fmt.Fprintln(w, "ID\tDATE\tNAME\tEMAIL\tMESSAGE")

	for _, i := range res.Value {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", i.ID, i.CreatedAt, i.Name, i.Email, i.Message)
	}

	return w.Flush()
}

func (c *Console) deleteInquiry(ctx context.Context, args []string) error {
	id, err := c.idFlag("delete-inquiry", "inquiry id", args)
	if err != nil {
		return err
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.DeleteInquiry(ctx, id)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "inquiry %s deleted\n", id)

	return nil
}

// roomFlags binds the fields shared by room-add and room-edit.
type roomFlags struct {
	name, display, image, amenities string
	price                           int
}

func (c *Console) parseRoom(name string, args []string, id *string) (roomFlags, error) {
	var f roomFlags

	fs := c.flags(name)
	if id != nil {
		fs.StringVar(id, "id", "", "room id")
	}

	fs.StringVar(&f.name, "name", "", "room name")
	fs.IntVar(&f.price, "price", 0, "nightly price in rupees")
	fs.StringVar(&f.display, "display", "", "price label, defaults to the formatted price")
	fs.StringVar(&f.image, "image", "", "image url or a local file to upload")
	fs.StringVar(&f.amenities, "amenities", "", "comma separated amenities")

	if err := fs.Parse(args); err != nil {
		return f, err
	}

	fields := map[string]string{"name": f.name}
	if id != nil {
		fields["id"] = *id
	}

	if err := required(fields); err != nil {
		return f, err
	}

	image, err := imageValue(f.image)
	if err != nil {
		return f, err
	}

	f.image = image

	return f, nil
}

// imageValue turns a readable local file into a data url; anything else is sent as is.
func imageValue(value string) (string, error) {
	info, err := os.Stat(value)
	if value == "" || err != nil || info.IsDir() {
		return value, nil
	}

	data, err := os.ReadFile(value)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	return base64.Encode(http.DetectContentType(data), data), nil
}

func splitList(raw string) []string {
	var items []string

	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

func (c *Console) addRoom(ctx context.Context, args []string) error {
	f, err := c.parseRoom("room-add", args, nil)
	if err != nil {
		return err
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.CreateRoom(ctx, roomDto.CreateRoomRequest{
		Name:         f.name,
		Price:        f.price,
		PriceDisplay: f.display,
		Image:        f.image,
		Amenities:    splitList(f.amenities),
	})
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "room %s added as %s\n", res.Value.Name, res.Value.ID)

	return nil
}

func (c *Console) editRoom(ctx context.Context, args []string) error {
	var id string

	f, err := c.parseRoom("room-edit", args, &id)
	if err != nil {
		return err
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.UpdateRoom(ctx, roomDto.UpdateRoomRequest{
		ID:           id,
		Name:         f.name,
		Price:        f.price,
		PriceDisplay: f.display,
		Image:        f.image,
		Amenities:    splitList(f.amenities),
	})
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "room %s updated\n", id)

	return nil
}

func (c *Console) deleteRoom(ctx context.Context, args []string) error {
	id, err := c.idFlag("room-delete", "room id", args)
	if err != nil {
		return err
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.DeleteRoom(ctx, id)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "room %s deleted\n", id)

	return nil
}

func (c *Console) saveCoupon(ctx context.Context, args []string) error {
	var (
		req  couponDto.SaveCouponRequest
		kind string
	)

	fs := c.flags("coupon-save")
	fs.StringVar(&req.Code, "code", "", "coupon code")
	fs.IntVar(&req.Discount, "discount", 0, "percent off, or rupees off for flat coupons")
	fs.StringVar(&kind, "type", string(pricing.CouponPercent), "percent or flat")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := required(map[string]string{"code": req.Code}); err != nil {
		return err
	}

	req.Type = pricing.CouponKind(kind)

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.SaveCoupon(ctx, req)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "coupon %s saved\n", res.Value.Code)

	return nil
}

func (c *Console) deleteCoupon(ctx context.Context, args []string) error {
	var code string

	fs := c.flags("coupon-delete")
	fs.StringVar(&code, "code", "", "coupon code")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := required(map[string]string{"code": code}); err != nil {
		return err
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.DeleteCoupon(ctx, code)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "coupon %s deleted\n", pricing.NormalizeCode(code))

	return nil
}

func (c *Console) blacklist(ctx context.Context, _ []string) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.ListBlacklist(ctx)
	if err != nil {
		return err
	}

	c.offline(res.Err)

	w := c.table()
	fmt.Fprintln(w, "PHONE\tADDED\tREASON")

	for _, e := range res.Value {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Phone, e.DateAdded, e.Reason)
	}

	return w.Flush()
}

func (c *Console) addBlacklist(ctx context.Context, args []string) error {
	var req blacklistDto.AddEntryRequest

	fs := c.flags("blacklist-add")
	fs.StringVar(&req.Phone, "phone", "", "guest phone")
	fs.StringVar(&req.Reason, "reason", "", "note shown to staff")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := required(map[string]string{"phone": req.Phone}); err != nil {
		return err
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.AddBlacklist(ctx, req)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "%s added to the blacklist\n", res.Value.Phone)

	return nil
}

func (c *Console) removeBlacklist(ctx context.Context, args []string) error {
	var number string

	fs := c.flags("blacklist-remove")
	fs.StringVar(&number, "phone", "", "guest phone")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := required(map[string]string{"phone": number}); err != nil {
		return err
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.RemoveBlacklist(ctx, number)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "%s removed from the blacklist\n", number)

	return nil
}

func (c *Console) idFlag(name, usage string, args []string) (string, error) {
	var id string

	fs := c.flags(name)
	fs.StringVar(&id, "id", "", usage)

	if err := fs.Parse(args); err != nil {
		return "", err
	}

	return id, required(map[string]string{"id": id})
}
