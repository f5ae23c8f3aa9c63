package grpcserver

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	discountpb "github.com/eshopx/microservices/proto/discount"
	"github.com/eshopx/microservices/services/discount/internal/models"
	"github.com/eshopx/microservices/services/discount/internal/service"
)

type Server struct {
	discountpb.UnimplementedDiscountServiceServer

	Log *slog.Logger
	Svc *service.DiscountService
}

func (s *Server) GetDiscount(ctx context.Context, req *discountpb.GetDiscountRequest) (*discountpb.CouponModel, error) {
	coupon, err := s.Svc.GetDiscount(ctx, req.GetProductName())
	if err != nil {
		s.Log.Error("get_discount_error", "product_name", req.GetProductName(), "error", err)
		return nil, status.Error(codes.Internal, "cannot get discount")
	}

	s.Log.Info("get_discount", "product_name", coupon.ProductName, "amount", coupon.Amount)
	return toModel(coupon), nil
}

func (s *Server) CreateDiscount(ctx context.Context, req *discountpb.CreateDiscountRequest) (*discountpb.CouponModel, error) {
	coupon := fromModel(req.GetCoupon())
	if err := s.Svc.CreateDiscount(ctx, coupon); err != nil {
		if errors.Is(err, service.ErrValidation) {
			s.Log.Warn("create_discount_invalid", "error", err)
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.Log.Error("create_discount_error", "error", err)
		return nil, status.Error(codes.Internal, "cannot create discount")
	}

	s.Log.Info("discount created", "product_name", coupon.ProductName, "id", coupon.ID)
	return toModel(coupon), nil
}

func (s *Server) UpdateDiscount(ctx context.Context, req *discountpb.UpdateDiscountRequest) (*discountpb.CouponModel, error) {
	coupon := fromModel(req.GetCoupon())
	if err := s.Svc.UpdateDiscount(ctx, coupon); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			s.Log.Warn("update_discount_invalid", "error", err)
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, service.ErrNotFound):
			s.Log.Warn("update_discount_not_found", "id", coupon.ID)
			return nil, status.Error(codes.NotFound, err.Error())
		default:
			s.Log.Error("update_discount_error", "error", err)
			return nil, status.Error(codes.Internal, "cannot update discount")
		}
	}

	s.Log.Info("discount updated", "product_name", coupon.ProductName, "id", coupon.ID)
	return toModel(coupon), nil
}

func (s *Server) DeleteDiscount(ctx context.Context, req *discountpb.DeleteDiscountRequest) (*discountpb.DeleteDiscountResponse, error) {
	deleted, err := s.Svc.DeleteDiscount(ctx, req.GetProductName())
	if err != nil {
		s.Log.Error("delete_discount_error", "product_name", req.GetProductName(), "error", err)
		return nil, status.Error(codes.Internal, "cannot delete discount")
	}

	s.Log.Info("delete_discount", "product_name", req.GetProductName(), "success", deleted)
	return &discountpb.DeleteDiscountResponse{Success: deleted}, nil
}

func toModel(c *models.Coupon) *discountpb.CouponModel {
	return &discountpb.CouponModel{
		Id:          c.ID,
		ProductName: c.ProductName,
		Description: c.Description,
		Amount:      c.Amount,
	}
}

func fromModel(m *discountpb.CouponModel) *models.Coupon {
	if m == nil {
		return &models.Coupon{}
	}
	return &models.Coupon{
		ID:          m.GetId(),
		ProductName: m.GetProductName(),
		Description: m.GetDescription(),
		Amount:      m.GetAmount(),
	}
}

// Run starts the gRPC listener in the background and returns the server so the
// caller can GracefulStop it.
func Run(addr string, srv *Server) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	gs := grpc.NewServer()
	discountpb.RegisterDiscountServiceServer(gs, srv)
	go func() {
		_ = gs.Serve(lis)
	}()
	return gs, nil
}
