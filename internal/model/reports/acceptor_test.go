package reports

import (
	"context"
	"net"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
	pb "max.ks1230/personal-accountant/internal/api/reports"
	"max.ks1230/personal-accountant/internal/model/reports/mock"
)

func startAcceptor(t *testing.T, acceptor reportAcceptor) *Sender {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := NewServerWithListener(lis, acceptor)
	go server.Serve()
	t.Cleanup(server.Shutdown)

	sender, err := NewSender("bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(sender.Close)
	return sender
}

func Test_SendReport_ShouldReachAcceptor(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	acceptor := mock.NewReportAcceptorMock(m)
	sender := startAcceptor(t, acceptor)
	report := &pb.Report{LedgerID: "id", ChatID: 42, Period: PeriodMonth, Text: "# Report"}
	acceptor.AcceptReportMock.
		Inspect(func(_ context.Context, got *pb.Report) {
			assert.Equal(m, report, got)
		}).
		Return(nil)

	err := sender.SendReport(context.Background(), report)

	assert.NoError(t, err)
}

func Test_SendReport_ShouldReturnAcceptorError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	acceptor := mock.NewReportAcceptorMock(m)
	sender := startAcceptor(t, acceptor)
	acceptor.AcceptReportMock.Return(errors.New("chat not found"))

	err := sender.SendReport(context.Background(), &pb.Report{LedgerID: "id", ChatID: 42})

	assert.EqualError(t, err, "chat not found")
}
