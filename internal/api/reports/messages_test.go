package reports

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func Test_ReportRequest_ShouldKeepLargeChatIDs(t *testing.T) {
	req := &ReportRequest{LedgerID: "id", ChatID: -1001234567890123, Period: "month"}

	data, err := req.Marshal()
	require.NoError(t, err)
	got, err := UnmarshalReportRequest(data)
	require.NoError(t, err)

	assert.Equal(t, req, got)
}

func Test_UnmarshalReportRequest_ShouldRejectMissingChat(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{"ledger_id": "id"})
	require.NoError(t, err)
	data, err := proto.Marshal(s)
	require.NoError(t, err)

	_, err = UnmarshalReportRequest(data)
	assert.Error(t, err)

	_, err = UnmarshalReportRequest([]byte{0xff, 0xff})
	assert.Error(t, err)
}

func Test_Status(t *testing.T) {
	assert.NoError(t, StatusError(Status(nil)))

	err := StatusError(Status(errors.New("chat is gone")))
	assert.EqualError(t, err, "chat is gone")

	assert.Error(t, StatusError(&structpb.Struct{}))
}
