package reports

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	pb "max.ks1230/personal-accountant/internal/api/reports"
	"max.ks1230/personal-accountant/internal/logger"
)

// Sender delivers finished reports to the bot's acceptor.
type Sender struct {
	conn   *grpc.ClientConn
	client pb.ReportAcceptorClient
}

func NewSender(addr string, opts ...grpc.DialOption) (*Sender, error) {
	opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "cannot initiate new connection")
	}
	client := pb.NewReportAcceptorClient(conn)
	return &Sender{conn, client}, nil
}

func (s *Sender) Close() {
	err := s.conn.Close()
	if err != nil {
		logger.Error("failed to close grpc connection", zap.Error(err))
	}
}

func (s *Sender) SendReport(ctx context.Context, report *pb.Report) error {
	logger.Info("SendReport - start", zap.String("ledger", report.LedgerID))
	defer logger.Info("SendReport - end")

	in, err := report.ToStruct()
	if err != nil {
		return err
	}
	status, err := s.client.AcceptReport(ctx, in)
	if err != nil {
		return errors.Wrap(err, "send report")
	}
	return pb.StatusError(status)
}
