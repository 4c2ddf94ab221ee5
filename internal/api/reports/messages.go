// Package reports declares the messages and the gRPC service shared by the
// bot and the reporter. Messages travel as protobuf Struct values.
package reports

import (
	"strconv"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldLedgerID = "ledger_id"
	fieldChatID   = "chat_id"
	fieldPeriod   = "period"
	fieldText     = "text"
	fieldError    = "error"
	fieldSuccess  = "success"
)

// ReportRequest asks the reporter to build a report for a ledger and deliver
// it to a chat.
type ReportRequest struct {
	LedgerID string
	ChatID   int64
	Period   string
}

// Report is a rendered report, or the reason it could not be built.
type Report struct {
	LedgerID string
	ChatID   int64
	Period   string
	Text     string
	Error    string
}

func (r *ReportRequest) Marshal() ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		fieldLedgerID: r.LedgerID,
		fieldChatID:   strconv.FormatInt(r.ChatID, 10),
		fieldPeriod:   r.Period,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode report request")
	}
	data, err := proto.Marshal(s)
	return data, errors.Wrap(err, "encode report request")
}

func UnmarshalReportRequest(data []byte) (*ReportRequest, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "decode report request")
	}
	chatID, err := chatIDOf(&s)
	if err != nil {
		return nil, errors.Wrap(err, "decode report request")
	}
	return &ReportRequest{
		LedgerID: stringOf(&s, fieldLedgerID),
		ChatID:   chatID,
		Period:   stringOf(&s, fieldPeriod),
	}, nil
}

func (r *Report) ToStruct() (*structpb.Struct, error) {
	s, err := structpb.NewStruct(map[string]any{
		fieldLedgerID: r.LedgerID,
		fieldChatID:   strconv.FormatInt(r.ChatID, 10),
		fieldPeriod:   r.Period,
		fieldText:     r.Text,
		fieldError:    r.Error,
	})
	return s, errors.Wrap(err, "encode report")
}

func ReportFromStruct(s *structpb.Struct) (*Report, error) {
	chatID, err := chatIDOf(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode report")
	}
	return &Report{
		LedgerID: stringOf(s, fieldLedgerID),
		ChatID:   chatID,
		Period:   stringOf(s, fieldPeriod),
		Text:     stringOf(s, fieldText),
		Error:    stringOf(s, fieldError),
	}, nil
}

// Status is the acceptor's reply.
func Status(err error) *structpb.Struct {
	fields := map[string]*structpb.Value{
		fieldSuccess: structpb.NewBoolValue(err == nil),
	}
	if err != nil {
		fields[fieldError] = structpb.NewStringValue(err.Error())
	}
	return &structpb.Struct{Fields: fields}
}

// StatusError turns an unsuccessful status back into an error.
func StatusError(s *structpb.Struct) error {
	if s.GetFields()[fieldSuccess].GetBoolValue() {
		return nil
	}
	msg := stringOf(s, fieldError)
	if msg == "" {
		msg = "report rejected"
	}
	return errors.New(msg)
}

func stringOf(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

// chat ids are sent as strings, a float64 number value would round them
func chatIDOf(s *structpb.Struct) (int64, error) {
	raw := stringOf(s, fieldChatID)
	if raw == "" {
		return 0, errors.New("missing chat id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, errors.Wrapf(err, "chat id %q", raw)
}
