package appointments

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/exceptions"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	appointmentStoreClientInstance contracts.AppointmentStoreClient
	onceAppointmentStoreClient     sync.Once
)

type appointmentStoreClient struct {
	BaseUrl    string
	HttpClient *http.Client
	Log        *zap.Logger
}

type storeOutcome struct {
	Error string `json:"error"`
}

func NewAppointmentStoreClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.AppointmentStoreClient {
	onceAppointmentStoreClient.Do(func() {
		client := &appointmentStoreClient{
			BaseUrl:    baseUrl + "/" + constvars.ResourceAppointment,
			HttpClient: &http.Client{Timeout: timeout},
			Log:        logger,
		}
		appointmentStoreClientInstance = client
	})
	return appointmentStoreClientInstance
}

// CreateAppointment persists a pending appointment on the record store. The
// server assigns the id and created_at timestamp.
func (c *appointmentStoreClient) CreateAppointment(ctx context.Context, request *models.Appointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentStoreClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("appointmentStoreClient.CreateAppointment error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("appointmentStoreClient.CreateAppointment error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("appointmentStoreClient.CreateAppointment error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrCreateStoreResource(readErr, constvars.ResourceAppointment)
		}

		var outcome storeOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && outcome.Error != "" {
			storeErr := fmt.Errorf("%s", outcome.Error)
			c.Log.Error("appointmentStoreClient.CreateAppointment store error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(storeErr),
			)
			return nil, exceptions.ErrCreateStoreResource(storeErr, constvars.ResourceAppointment)
		}
		return nil, exceptions.ErrCreateStoreResource(fmt.Errorf("store returned status %d", resp.StatusCode), constvars.ResourceAppointment)
	}

	appointment := new(models.Appointment)
	err = json.NewDecoder(resp.Body).Decode(&appointment)
	if err != nil {
		c.Log.Error("appointmentStoreClient.CreateAppointment error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeStoreResponse(err, constvars.ResourceAppointment)
	}

	c.Log.Info("appointmentStoreClient.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (c *appointmentStoreClient) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentStoreClient.FindAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	url := fmt.Sprintf("%s/%s", c.BaseUrl, appointmentID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrGetStoreResource(fmt.Errorf("store returned status %d", resp.StatusCode), constvars.ResourceAppointment)
	}

	appointment := new(models.Appointment)
	err = json.NewDecoder(resp.Body).Decode(&appointment)
	if err != nil {
		return nil, exceptions.ErrDecodeStoreResponse(err, constvars.ResourceAppointment)
	}

	c.Log.Info("appointmentStoreClient.FindAppointmentByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}
