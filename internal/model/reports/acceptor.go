package reports

import (
	"context"
	"net"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	pb "max.ks1230/personal-accountant/internal/api/reports"
	"max.ks1230/personal-accountant/internal/logger"
)

type reportAcceptor interface {
	AcceptReport(ctx context.Context, report *pb.Report) error
}

// AcceptorServer receives reports from the reporter and hands them to the
// acceptor, which delivers them to the chat.
type AcceptorServer struct {
	acceptor reportAcceptor
	server   *grpc.Server
	lis      net.Listener
}

func NewServer(addr string, acceptor reportAcceptor) (*AcceptorServer, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create server")
	}
	return NewServerWithListener(lis, acceptor), nil
}

func NewServerWithListener(lis net.Listener, acceptor reportAcceptor) *AcceptorServer {
	rpcServer := grpc.NewServer()
	service := &AcceptorServer{
		acceptor: acceptor,
		server:   rpcServer,
		lis:      lis,
	}
	pb.RegisterReportAcceptorServer(rpcServer, service)
	return service
}

func (s *AcceptorServer) Serve() {
	logger.Info("gRPC server listening", zap.Any("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil {
		logger.Error("failed to serve gRPC", zap.Error(err))
	}
}

func (s *AcceptorServer) Shutdown() {
	s.server.GracefulStop()
	logger.Info("grpc server stopped")
}

func (s *AcceptorServer) AcceptReport(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	report, err := pb.ReportFromStruct(in)
	if err != nil {
		return pb.Status(err), nil
	}
	if err = s.acceptor.AcceptReport(ctx, report); err != nil {
		logger.Error("cannot accept report", zap.Int64("chat", report.ChatID), zap.Error(err))
		return pb.Status(err), nil
	}
	return pb.Status(nil), nil
}
