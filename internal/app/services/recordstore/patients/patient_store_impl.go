package patients

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
	patientStoreClientInstance contracts.PatientStoreClient
	oncePatientStoreClient     sync.Once
)

type patientStoreClient struct {
	BaseUrl    string
	HttpClient *http.Client
	Log        *zap.Logger
}

// storeOutcome is the record store's error envelope on non-2xx responses.
type storeOutcome struct {
	Error string `json:"error"`
}

func NewPatientStoreClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.PatientStoreClient {
	oncePatientStoreClient.Do(func() {
		client := &patientStoreClient{
			BaseUrl:    baseUrl + "/" + constvars.ResourcePatient,
			HttpClient: &http.Client{Timeout: timeout},
			Log:        logger,
		}
		patientStoreClientInstance = client
	})
	return patientStoreClientInstance
}

func (c *patientStoreClient) CreatePatient(ctx context.Context, request *models.Patient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientStoreClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("patientStoreClient.CreatePatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientStoreClient.CreatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("patientStoreClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrCreateStoreResource(readErr, constvars.ResourcePatient)
		}

		var outcome storeOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && outcome.Error != "" {
			storeErr := fmt.Errorf("%s", outcome.Error)
			c.Log.Error("patientStoreClient.CreatePatient store error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(storeErr),
			)
			return nil, exceptions.ErrCreateStoreResource(storeErr, constvars.ResourcePatient)
		}
		return nil, exceptions.ErrCreateStoreResource(fmt.Errorf("store returned status %d", resp.StatusCode), constvars.ResourcePatient)
	}

	patient := new(models.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patient)
	if err != nil {
		c.Log.Error("patientStoreClient.CreatePatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeStoreResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientStoreClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientStoreClient) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientStoreClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	url := fmt.Sprintf("%s/%s", c.BaseUrl, patientID)
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
		return nil, exceptions.ErrGetStoreResource(fmt.Errorf("store returned status %d", resp.StatusCode), constvars.ResourcePatient)
	}

	patient := new(models.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patient)
	if err != nil {
		return nil, exceptions.ErrDecodeStoreResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientStoreClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}
