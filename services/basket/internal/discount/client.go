package discount

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	discountpb "github.com/eshopx/microservices/proto/discount"
)

type Coupon struct {
	ProductName string
	Description string
	Amount      float64
}

type Client struct {
	log  *slog.Logger
	conn *grpc.ClientConn
	cc   discountpb.DiscountServiceClient
}

func NewClient(log *slog.Logger, addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{
		log:  log,
		conn: conn,
		cc:   discountpb.NewDiscountServiceClient(conn),
	}, nil
}

func (c *Client) GetDiscount(ctx context.Context, productName string) (*Coupon, error) {
	resp, err := c.cc.GetDiscount(ctx, &discountpb.GetDiscountRequest{ProductName: productName})
	if err != nil {
		return nil, err
	}

	c.log.Debug("discount lookup", "product_name", productName, "amount", resp.GetAmount())
	return &Coupon{
		ProductName: resp.GetProductName(),
		Description: resp.GetDescription(),
		Amount:      resp.GetAmount(),
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
