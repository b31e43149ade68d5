package console

import (
	"context"
	"fmt"
	"strings"

	inquiryDto "grandhotel/internal/domains/inquiry/model/dto"
	reviewDto "grandhotel/internal/domains/review/model/dto"
)

func (c *Console) reviews(ctx context.Context, _ []string) error {
	res, err := c.gateway.ListReviews(ctx)
	if err != nil {
		return err
	}

	c.offline(res.Err)

	if len(res.Value) == 0 {
		fmt.Fprintln(c.out, "no reviews yet")

		return nil
	}

	for _, r := range res.Value {
		fmt.Fprintf(c.out, "%s %s (%s)\n  %s\n", strings.Repeat("*", r.Rating), r.Name, r.CreatedAt, r.Text)
	}

	return nil
}

func (c *Console) review(ctx context.Context, args []string) error {
	var req reviewDto.CreateReviewRequest

	fs := c.flags("review")
	fs.StringVar(&req.Name, "name", "", "your name")
	fs.StringVar(&req.Text, "text", "", "your review")
	fs.IntVar(&req.Rating, "rating", 0, "1 to 5 stars, defaults to 5")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := required(map[string]string{"name": req.Name, "text": req.Text}); err != nil {
		return err
	}

	res, err := c.gateway.CreateReview(ctx, req)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "thank you %s, your %d star review is posted\n", res.Value.Name, res.Value.Rating)

	return nil
}

func (c *Console) inquire(ctx context.Context, args []string) error {
	var req inquiryDto.CreateInquiryRequest

	fs := c.flags("inquire")
	fs.StringVar(&req.Name, "name", "", "your name")
	fs.StringVar(&req.Email, "email", "", "reply address")
	fs.StringVar(&req.Message, "message", "", "your question")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := required(map[string]string{"name": req.Name, "email": req.Email, "message": req.Message}); err != nil {
		return err
	}

	res, err := c.gateway.CreateInquiry(ctx, req)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintln(c.out, "message sent, we will reply by email")

	return nil
}
