package transport

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/elias-federation/internal/model"
)

const (
	peerServiceName      = "elias.federation.v1.PeerService"
	pushRuleUpdateMethod = "/" + peerServiceName + "/PushRuleUpdate"
	announceBlockMethod  = "/" + peerServiceName + "/AnnounceBlock"
)

type RuleUpdate struct {
	Package model.UpdatePackage `json:"package"`
}

type NewBlock struct {
	Block    model.Block `json:"block"`
	FromNode string      `json:"from_node"`
}

type Empty struct{}

// PeerServiceServer is the node-to-node API.
type PeerServiceServer interface {
	PushRuleUpdate(ctx context.Context, in *RuleUpdate) (*model.RuleUpdateResponse, error)
	AnnounceBlock(ctx context.Context, in *NewBlock) (*Empty, error)
}

func RegisterPeerServiceServer(s grpc.ServiceRegistrar, srv PeerServiceServer) {
	s.RegisterService(&peerServiceDesc, srv)
}

var peerServiceDesc = grpc.ServiceDesc{
	ServiceName: peerServiceName,
	HandlerType: (*PeerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PushRuleUpdate", Handler: pushRuleUpdateHandler},
		{MethodName: "AnnounceBlock", Handler: announceBlockHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "elias/federation/v1/peer.json",
}

func pushRuleUpdateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RuleUpdate)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PeerServiceServer).PushRuleUpdate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: pushRuleUpdateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PeerServiceServer).PushRuleUpdate(ctx, req.(*RuleUpdate))
	}
	return interceptor(ctx, in, info, handler)
}

func announceBlockHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(NewBlock)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PeerServiceServer).AnnounceBlock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: announceBlockMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PeerServiceServer).AnnounceBlock(ctx, req.(*NewBlock))
	}
	return interceptor(ctx, in, info, handler)
}

// PeerHandler serves rule updates and block announcements from other nodes.
type PeerHandler struct {
	logger *zap.Logger
	rules  RuleReceiver
	blocks BlockReceiver
}

func NewPeerHandler(rules RuleReceiver, blocks BlockReceiver, logger *zap.Logger) *PeerHandler {
	return &PeerHandler{
		logger: logger.Named("peerHandler"),
		rules:  rules,
		blocks: blocks,
	}
}

func (h *PeerHandler) PushRuleUpdate(ctx context.Context, in *RuleUpdate) (*model.RuleUpdateResponse, error) {
	resp := h.rules.Receive(ctx, in.Package)
	return &resp, nil
}

func (h *PeerHandler) AnnounceBlock(ctx context.Context, in *NewBlock) (*Empty, error) {
	err := h.blocks.ReceiveBlock(ctx, in.Block)
	switch {
	case err == nil:
		return &Empty{}, nil
	case errors.Is(err, model.ErrInvalidBlock):
		h.logger.Debug("announced block rejected", zap.String("from", in.FromNode), zap.Error(err))
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	default:
		return nil, status.Error(codes.Internal, err.Error())
	}
}
