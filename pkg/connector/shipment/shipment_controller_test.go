package shipment_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/inoova/shipping-connector/pkg/connector/carrier"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/shipment"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	mock_carrier "github.com/inoova/shipping-connector/test/mock/connector/carrier"
	mock_realtime "github.com/inoova/shipping-connector/test/mock/connector/realtime"
	mock_storage "github.com/inoova/shipping-connector/test/mock/connector/storage"
	"github.com/stretchr/testify/suite"
)

type ShipmentControllerTestSuite struct {
	suite.Suite

	ctx       context.Context
	ctrl      *gomock.Controller
	storage   *mock_storage.MockDeliveryNoteStorage
	tx        *mock_storage.MockTx
	carrier   *mock_carrier.MockCarrier
	publisher *mock_realtime.MockPublisher
	ctrler    shipment.Controller
}

func TestShipmentController(t *testing.T) {
	suite.Run(t, new(ShipmentControllerTestSuite))
}

func (s *ShipmentControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockDeliveryNoteStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.carrier = mock_carrier.NewMockCarrier(s.ctrl)
	s.publisher = mock_realtime.NewMockPublisher(s.ctrl)

	s.carrier.EXPECT().Code().Return(carrier.CodeGLS).AnyTimes()
	s.ctrler = shipment.NewController(s.storage, carrier.NewRegistry(s.carrier), s.publisher)
}

func (s *ShipmentControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ShipmentControllerTestSuite) submittedNote() model.DeliveryNote {
	weight, _ := model.NewDecimalFromString("2.5")
	return model.DeliveryNote{
		Name:         "MAT-DN-2024-00001",
		DocStatus:    model.DocStatusSubmitted,
		Version:      3,
		CustomerName: "Mario Rossi",
		ShippingAddress: &model.Address{
			Line1:   "Via Roma 1",
			Pincode: "20121",
			City:    "Milano",
		},
		Items: []model.DeliveryNoteItem{
			{ItemCode: "SKU-1", Qty: model.NewDecimalFromFloat(1), TotalWeight: &weight},
		},
		ShopifyOrderID:     "gid://shopify/Order/1",
		ShopifyOrderNumber: "#1001",
	}
}

func (s *ShipmentControllerTestSuite) expectGet(note model.DeliveryNote, err error) *gomock.Call {
	return s.storage.EXPECT().GetDeliveryNote(gomock.Any(), s.tx, "MAT-DN-2024-00001").Return(note, err)
}

func (s *ShipmentControllerTestSuite) TestCreate() {
	ts := time.Now().Unix()
	note := s.submittedNote()

	var shipmentReq carrier.ShipmentRequest
	var stored model.DeliveryNote
	var payload []byte
	hooks := storage.ListWebhookResult{
		Total:   1,
		Records: []model.Webhook{{ID: "wh_1", Url: "https://shop.example.com/hook", Secret: "secret"}},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.expectGet(note, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.carrier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, req carrier.ShipmentRequest) (model.ShipmentResult, error) {
				shipmentReq = req
				return model.ShipmentResult{TrackingNumber: "ABC123", LabelURL: "https://labels.example.com/ABC123.pdf"}, nil
			},
		),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.expectGet(note, nil),
		s.storage.EXPECT().StoreDeliveryNote(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, n model.DeliveryNote) error {
				stored = n
				return nil
			},
		),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, gomock.Any()).Return(hooks, nil),
		s.storage.EXPECT().AddWebhookEvent(gomock.Any(), s.tx, ts, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, ts int64, key string, p []byte) error {
				payload = p
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.publisher.EXPECT().Publish("MAT-DN-2024-00001"),
	)

	result, err := s.ctrler.Create(s.ctx, ts, shipment.CreateShipmentRequest{DeliveryNote: note.Name, Requester: "erp"})
	s.Require().NoError(err)
	s.Equal("ABC123", result.TrackingNumber)
	s.Equal(carrier.CodeGLS, result.Carrier)

	s.Equal("MAT-DN-2024-00001", shipmentReq.Reference)
	s.Equal("Mario Rossi", shipmentReq.Recipient)
	s.Equal("IT", shipmentReq.Address.CountryCode)
	s.Equal("2.5", shipmentReq.Weight.String())
	s.Equal("#1001", shipmentReq.Comment)

	s.Equal(int64(4), stored.Version)
	s.Equal("ABC123", stored.TrackingNumber)
	s.Equal("https://labels.example.com/ABC123.pdf", stored.ShippingLabelURL)
	s.Equal(carrier.CodeGLS, stored.ShippingCarrier)
	s.Equal(model.ShippingStatusLabelCreated, stored.ShippingStatus)
	s.Equal(ts, stored.UpdatedAt)
	s.Equal("erp", stored.UpdatedBy)

	s.Contains(string(payload), `"type":"shipment.created"`)
	s.Contains(string(payload), `"shopify_order_id":"gid://shopify/Order/1"`)
}

// expectBooking expects the first read of note and a successful carrier booking of ABC123.
func (s *ShipmentControllerTestSuite) expectBooking(note model.DeliveryNote) []*gomock.Call {
	return []*gomock.Call{
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.expectGet(note, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.carrier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).Return(model.ShipmentResult{TrackingNumber: "ABC123"}, nil),
	}
}

func (s *ShipmentControllerTestSuite) TestCreateKeepsChangesMadeDuringBooking() {
	ts := time.Now().Unix()
	note := s.submittedNote()
	current := s.submittedNote()
	current.Version = 5
	current.CustomerName = "Luigi Bianchi"
	current.ShopifyOrderNumber = "#1002"

	var stored model.DeliveryNote
	calls := append(s.expectBooking(note),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.expectGet(current, nil),
		s.storage.EXPECT().StoreDeliveryNote(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, n model.DeliveryNote) error {
				stored = n
				return nil
			},
		),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListWebhookResult{}, nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.publisher.EXPECT().Publish("MAT-DN-2024-00001"),
	)
	gomock.InOrder(calls...)

	_, err := s.ctrler.Create(s.ctx, ts, shipment.CreateShipmentRequest{DeliveryNote: note.Name})
	s.Require().NoError(err)
	s.Equal(int64(6), stored.Version)
	s.Equal("Luigi Bianchi", stored.CustomerName)
	s.Equal("#1002", stored.ShopifyOrderNumber)
	s.Equal("ABC123", stored.TrackingNumber)
}

func (s *ShipmentControllerTestSuite) TestCreateCancelledDuringBooking() {
	note := s.submittedNote()
	cancelled := s.submittedNote()
	cancelled.DocStatus = model.DocStatusCancelled
	cancelled.Version = 4

	calls := append(s.expectBooking(note),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.expectGet(cancelled, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)
	gomock.InOrder(calls...)

	_, err := s.ctrler.Create(s.ctx, time.Now().Unix(), shipment.CreateShipmentRequest{DeliveryNote: note.Name})
	s.ErrorIs(err, model.ErrDeliveryNoteNotSubmitted)
}

func (s *ShipmentControllerTestSuite) TestCreateBookedConcurrently() {
	note := s.submittedNote()
	booked := s.submittedNote()
	booked.TrackingNumber = "XYZ789"
	booked.Version = 4

	calls := append(s.expectBooking(note),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.expectGet(booked, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)
	gomock.InOrder(calls...)

	_, err := s.ctrler.Create(s.ctx, time.Now().Unix(), shipment.CreateShipmentRequest{DeliveryNote: note.Name})
	s.ErrorIs(err, model.ErrShipmentAlreadyExists)
	s.Equal("Shipment already exists: XYZ789", err.Error())
}

func (s *ShipmentControllerTestSuite) TestCreateWhileBookingUnderway() {
	note := s.submittedNote()
	req := shipment.CreateShipmentRequest{DeliveryNote: note.Name}

	var nestedErr error
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.expectGet(note, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.carrier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ carrier.ShipmentRequest) (model.ShipmentResult, error) {
				_, nestedErr = s.ctrler.Create(ctx, time.Now().Unix(), req)
				return model.ShipmentResult{}, fmt.Errorf("GLS Error: timeout%w", model.ErrCarrierError)
			},
		),
	)

	_, err := s.ctrler.Create(s.ctx, time.Now().Unix(), req)
	s.ErrorIs(err, model.ErrCarrierError)
	s.ErrorIs(nestedErr, model.ErrShipmentInProgress)
}

func (s *ShipmentControllerTestSuite) TestCreateInvalidRequest() {
	_, err := s.ctrler.Create(s.ctx, time.Now().Unix(), shipment.CreateShipmentRequest{})
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ShipmentControllerTestSuite) TestCreateNotFound() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.expectGet(model.DeliveryNote{}, model.ErrDeliveryNoteNotFound),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.ctrler.Create(s.ctx, time.Now().Unix(), shipment.CreateShipmentRequest{DeliveryNote: "MAT-DN-2024-00001"})
	s.ErrorIs(err, model.ErrDeliveryNoteNotFound)
}

func (s *ShipmentControllerTestSuite) TestCreateNotSubmitted() {
	note := s.submittedNote()
	note.DocStatus = model.DocStatusDraft
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.expectGet(note, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.ctrler.Create(s.ctx, time.Now().Unix(), shipment.CreateShipmentRequest{DeliveryNote: note.Name})
	s.ErrorIs(err, model.ErrDeliveryNoteNotSubmitted)
	s.Equal("Delivery Note must be submitted", err.Error())
}

func (s *ShipmentControllerTestSuite) TestCreateAlreadyExists() {
	note := s.submittedNote()
	note.TrackingNumber = "ABC123"
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.expectGet(note, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.ctrler.Create(s.ctx, time.Now().Unix(), shipment.CreateShipmentRequest{DeliveryNote: note.Name})
	s.ErrorIs(err, model.ErrShipmentAlreadyExists)
	s.Equal("Shipment already exists: ABC123", err.Error())
}

func (s *ShipmentControllerTestSuite) TestCreateWithoutAddress() {
	note := s.submittedNote()
	note.ShippingAddress = nil
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.expectGet(note, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.ctrler.Create(s.ctx, time.Now().Unix(), shipment.CreateShipmentRequest{DeliveryNote: note.Name})
	s.ErrorIs(err, model.ErrShippingAddressRequired)
}

func (s *ShipmentControllerTestSuite) TestCreateCarrierFailure() {
	note := s.submittedNote()
	carrierErr := fmt.Errorf("GLS Error: timeout%w", model.ErrCarrierError)
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.expectGet(note, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.carrier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).Return(model.ShipmentResult{}, carrierErr),
	)

	_, err := s.ctrler.Create(s.ctx, time.Now().Unix(), shipment.CreateShipmentRequest{DeliveryNote: note.Name})
	s.ErrorIs(err, model.ErrCarrierError)
}

func (s *ShipmentControllerTestSuite) TestGetTrackingStatus() {
	s.carrier.EXPECT().TrackingStatus(gomock.Any(), "ABC123").Return(model.ShippingStatusInTransit, nil)
	status, err := s.ctrler.GetTrackingStatus(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(model.TrackingStatus{Status: "In Transit", TrackingNumber: "ABC123"}, status)

	s.carrier.EXPECT().TrackingStatus(gomock.Any(), "DEMO1").Return(model.ShippingStatus(""), model.ErrTrackingNotSupported)
	status, err = s.ctrler.GetTrackingStatus(s.ctx, "DEMO1")
	s.Require().NoError(err)
	s.Equal(model.TrackingStatusUnknown, status.Status)

	_, err = s.ctrler.GetTrackingStatus(s.ctx, "")
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ShipmentControllerTestSuite) TestBuildShipmentRequestDefaults() {
	note := s.submittedNote()
	note.Items = nil
	note.CustomerName = ""
	note.ShopifyOrderNumber = ""
	note.ShippingAddress.Title = "Magazzino Nord"
	note.ShippingAddress.CountryCode = "de"

	req, err := shipment.BuildShipmentRequest(note)
	s.Require().NoError(err)
	s.Equal("1", req.Weight.String())
	s.Equal("Magazzino Nord", req.Recipient)
	s.Equal("DE", req.Address.CountryCode)
	s.Equal(note.Name, req.Comment)
	s.Equal("de", note.ShippingAddress.CountryCode)
}

func (s *ShipmentControllerTestSuite) TestBuildShipmentRequestPrefersAddressTitle() {
	note := s.submittedNote()
	note.ShippingAddress.Title = "Rossi Srl - Magazzino"

	req, err := shipment.BuildShipmentRequest(note)
	s.Require().NoError(err)
	s.Equal("Rossi Srl - Magazzino", req.Recipient)

	note.ShippingAddress.Title = ""
	req, err = shipment.BuildShipmentRequest(note)
	s.Require().NoError(err)
	s.Equal("Mario Rossi", req.Recipient)
}
