package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inoova/shipping-connector/pkg/connector/client"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite

	ctx    context.Context
	mux    *http.ServeMux
	server *httptest.Server
	client *client.Client
}

func TestClient(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.client = client.NewClient(s.server.URL+"/", client.WithAPIKey("key:secret"))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestCreateShipment() {
	s.mux.HandleFunc("/api/method/shipping_connector.api.create_shipment", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("token key:secret", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		s.JSONEq(`{"delivery_note":"MAT-DN-2024-00001"}`, string(body))

		_, _ = w.Write([]byte(`{"message":{"tracking_number":"ABC123","label_url":"https://labels.example.com/ABC123.pdf","carrier":"GLS"}}`))
	})

	result, err := s.client.CreateShipment(s.ctx, "MAT-DN-2024-00001")
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal("ABC123", result.TrackingNumber)
	s.Equal("https://labels.example.com/ABC123.pdf", result.LabelURL)
}

func (s *ClientTestSuite) TestCreateShipmentNoMessage() {
	s.mux.HandleFunc("/api/method/shipping_connector.api.create_shipment", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	result, err := s.client.CreateShipment(s.ctx, "MAT-DN-2024-00001")
	s.Require().NoError(err)
	s.Nil(result)
}

func (s *ClientTestSuite) TestCreateShipmentRemoteError() {
	s.mux.HandleFunc("/api/method/shipping_connector.api.create_shipment", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"Carrier unreachable"}`))
	})

	result, err := s.client.CreateShipment(s.ctx, "MAT-DN-2024-00001")
	s.Nil(result)
	var remoteErr *model.RemoteError
	s.Require().True(errors.As(err, &remoteErr))
	s.Equal(http.StatusBadGateway, remoteErr.StatusCode)
	s.Equal("Carrier unreachable", remoteErr.Message)
}

func (s *ClientTestSuite) TestCreateShipmentErrorWithoutMessage() {
	s.mux.HandleFunc("/api/method/shipping_connector.api.create_shipment", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`Internal Server Error`))
	})

	_, err := s.client.CreateShipment(s.ctx, "MAT-DN-2024-00001")
	var remoteErr *model.RemoteError
	s.Require().True(errors.As(err, &remoteErr))
	s.Empty(remoteErr.Message)
}

func (s *ClientTestSuite) TestGetTrackingStatus() {
	s.mux.HandleFunc("/api/method/shipping_connector.api.get_tracking_status", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("ZX 1", r.URL.Query().Get("tracking_number"))
		_, _ = w.Write([]byte(`{"message":{"status":"In Transit","tracking_number":"ZX 1"}}`))
	})

	status, err := s.client.GetTrackingStatus(s.ctx, "ZX 1")
	s.Require().NoError(err)
	s.Equal(model.TrackingStatus{Status: "In Transit", TrackingNumber: "ZX 1"}, status)
}

func (s *ClientTestSuite) TestGetDeliveryNote() {
	s.mux.HandleFunc("/api/resource/Delivery%20Note/MAT-DN-2024-00001", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"data":{"name":"MAT-DN-2024-00001","docstatus":1,"tracking_number":"ABC123","shipping_carrier":"BRT"}}`))
	})

	note, err := s.client.GetDeliveryNote(s.ctx, "MAT-DN-2024-00001")
	s.Require().NoError(err)
	s.Equal(model.DocStatusSubmitted, note.DocStatus)
	s.Equal("ABC123", note.TrackingNumber)
	s.Equal("BRT", note.Carrier())
}
